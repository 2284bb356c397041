// models/user.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the access level carried by a user
type Role string

const (
	RoleManager     Role = "manager"
	RoleSalesperson Role = "salesperson"
)

// User model. Password is stored as given.
type User struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Phone        string             `json:"phone" bson:"phone"`
	Email        string             `json:"email" bson:"email"`
	Organisation string             `json:"organisation" bson:"organisation"`
	Password     string             `json:"password,omitempty" bson:"password"`
	Role         Role               `json:"role" bson:"role"`
}

// WithoutPassword returns a copy of the user safe to echo back to clients
func (u User) WithoutPassword() User {
	u.Password = ""
	return u
}

// UserFilter is an exact-match query on user fields. Empty fields are ignored.
type UserFilter struct {
	Email    string
	Phone    string
	Password string
	Role     Role
}

// IsEmpty reports whether no field is set
func (f UserFilter) IsEmpty() bool {
	return f.Email == "" && f.Phone == "" && f.Password == "" && f.Role == ""
}

// Matches reports whether u satisfies every non-empty field of the filter
func (f UserFilter) Matches(u User) bool {
	if f.Email != "" && u.Email != f.Email {
		return false
	}
	if f.Phone != "" && u.Phone != f.Phone {
		return false
	}
	if f.Password != "" && u.Password != f.Password {
		return false
	}
	if f.Role != "" && u.Role != f.Role {
		return false
	}
	return true
}

// ProfileUpdate lists the fields overwritten by an update-profile call
type ProfileUpdate struct {
	Name         string
	Phone        string
	Email        string
	Organisation string
}
