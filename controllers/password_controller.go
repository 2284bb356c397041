// controllers/password_controller.go
package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/HSouheill/salesapp_backend/models"
	"github.com/HSouheill/salesapp_backend/repositories"
	"github.com/HSouheill/salesapp_backend/utils"
)

// ResetNotifier tells a user that a password reset was requested
type ResetNotifier interface {
	NotifyPasswordReset(email, name string) error
}

// PasswordController handles the forgot/reset password flow
type PasswordController struct {
	users    repositories.UserRepository
	notifier ResetNotifier
	logger   *zap.Logger
}

// NewPasswordController creates a new password controller. notifier may be nil.
func NewPasswordController(users repositories.UserRepository, notifier ResetNotifier, logger *zap.Logger) *PasswordController {
	return &PasswordController{
		users:    users,
		notifier: notifier,
		logger:   logger.Named("password"),
	}
}

// ForgotPassword returns the identifier of the user matching email and role.
// The identifier is all a client needs to call ResetPassword.
func (pc *PasswordController) ForgotPassword(c echo.Context) error {
	var req models.ForgotPasswordRequest
	if err := bindRequest(c, &req); err != nil {
		return respondError(c, pc.logger, err)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := pc.users.FindOne(ctx, models.UserFilter{Email: req.Email, Role: req.Role})
	if err != nil {
		return respondError(c, pc.logger, err)
	}

	if pc.notifier != nil {
		if err := pc.notifier.NotifyPasswordReset(user.Email, user.Name); err != nil {
			pc.logger.Warn("reset notice not sent",
				zap.String("email", utils.MaskEmail(user.Email)),
				zap.Error(err),
			)
		}
	}

	return c.JSON(http.StatusOK, models.OK("User verified", map[string]string{
		"userId": user.ID.Hex(),
		"email":  utils.MaskEmail(user.Email),
	}))
}

// ResetPassword overwrites the password of the user returned by ForgotPassword
func (pc *PasswordController) ResetPassword(c echo.Context) error {
	var req models.ResetPasswordRequest
	if err := bindRequest(c, &req); err != nil {
		return respondError(c, pc.logger, err)
	}

	userID, err := models.ParseID(req.UserID)
	if err != nil {
		return respondError(c, pc.logger, err)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := pc.users.UpdatePassword(ctx, userID, req.NewPassword); err != nil {
		return respondError(c, pc.logger, err)
	}

	return c.JSON(http.StatusOK, models.OK("Password reset successfully", nil))
}
