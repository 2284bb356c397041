package security

import (
	"github.com/HSouheill/salesapp_backend/models"
)

// Authorize is the single access check for privileged operations. The actor
// role is taken from the request as sent; nothing here verifies it.
func Authorize(actor, required models.Role) error {
	if actor == "" || actor != required {
		return models.ErrAccessDenied
	}
	return nil
}
