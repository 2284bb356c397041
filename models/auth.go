// models/auth.go

package models

// RegisterRequest is the body of POST /register
type RegisterRequest struct {
	Name         string `json:"name" form:"name"`
	Phone        string `json:"phone" form:"phone"`
	Email        string `json:"email" form:"email" validate:"required"`
	Organisation string `json:"organisation" form:"organisation"`
	Password     string `json:"password" form:"password" validate:"required"`
	Role         Role   `json:"role" form:"role" validate:"required"`
}

// User converts the request into the stored document
func (r RegisterRequest) User() *User {
	return &User{
		Name:         r.Name,
		Phone:        r.Phone,
		Email:        r.Email,
		Organisation: r.Organisation,
		Password:     r.Password,
		Role:         r.Role,
	}
}

// LoginRequest is the body of POST /login. Phone is only honoured in partial match mode.
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Phone    string `json:"phone" form:"phone"`
	Password string `json:"password" form:"password" validate:"required"`
	Role     Role   `json:"role" form:"role"`
}

// ChangePasswordRequest is the body of POST /change-password
type ChangePasswordRequest struct {
	UserID   string `json:"userId" form:"userId" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// ForgotPasswordRequest is the body of POST /forgot-password
type ForgotPasswordRequest struct {
	Email string `json:"email" form:"email" validate:"required"`
	Role  Role   `json:"role" form:"role" validate:"required"`
}

// ResetPasswordRequest is the body of POST /reset-password
type ResetPasswordRequest struct {
	UserID      string `json:"userId" form:"userId" validate:"required"`
	NewPassword string `json:"newPassword" form:"newPassword" validate:"required"`
}

// UpdateProfileRequest is the body of POST /update-profile
type UpdateProfileRequest struct {
	UserID       string `json:"userId" form:"userId" validate:"required"`
	Name         string `json:"name" form:"name"`
	Phone        string `json:"phone" form:"phone"`
	Email        string `json:"email" form:"email"`
	Organisation string `json:"organisation" form:"organisation"`
}

// Update returns the profile fields to overwrite
func (r UpdateProfileRequest) Update() ProfileUpdate {
	return ProfileUpdate{
		Name:         r.Name,
		Phone:        r.Phone,
		Email:        r.Email,
		Organisation: r.Organisation,
	}
}
