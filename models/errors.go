package models

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Failures reported to clients. Anything else coming out of a repository is a
// store failure.
var (
	ErrDuplicateUser      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidIdentifier  = errors.New("invalid identifier")
	ErrNotFound           = errors.New("not found")
	ErrAccessDenied       = errors.New("access denied")
)

// ParseID converts a hex identifier into an ObjectID
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidIdentifier
	}
	return oid, nil
}
