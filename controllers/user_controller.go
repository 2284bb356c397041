// controllers/user_controller.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/HSouheill/salesapp_backend/models"
	"github.com/HSouheill/salesapp_backend/repositories"
)

// UserController contains profile and user listing logic
type UserController struct {
	users  repositories.UserRepository
	logger *zap.Logger
}

// NewUserController creates a new user controller
func NewUserController(users repositories.UserRepository, logger *zap.Logger) *UserController {
	return &UserController{
		users:  users,
		logger: logger.Named("user"),
	}
}

// GetProfile returns the stored user. This is the only route that reports
// failures with a non-200 status.
func (uc *UserController) GetProfile(c echo.Context) error {
	userID, err := models.ParseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail("Invalid user ID"))
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.Fail("User not found"))
		}
		return respondError(c, uc.logger, err)
	}

	return c.JSON(http.StatusOK, models.OK("Profile retrieved successfully", user))
}

// UpdateProfile overwrites name, phone, email and organisation. An unknown
// user id is a no-op.
func (uc *UserController) UpdateProfile(c echo.Context) error {
	var req models.UpdateProfileRequest
	if err := bindRequest(c, &req); err != nil {
		return respondError(c, uc.logger, err)
	}

	userID, err := models.ParseID(req.UserID)
	if err != nil {
		return respondError(c, uc.logger, err)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := uc.users.UpdateProfile(ctx, userID, req.Update()); err != nil {
		return respondError(c, uc.logger, err)
	}

	return c.JSON(http.StatusOK, models.OK("Profile updated successfully", nil))
}

// ListSalespersons returns every salesperson. Access is checked by the route's
// role guard.
func (uc *UserController) ListSalespersons(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	users, err := uc.users.FindByRole(ctx, models.RoleSalesperson)
	if err != nil {
		return respondError(c, uc.logger, err)
	}

	for i := range users {
		users[i] = users[i].WithoutPassword()
	}

	return c.JSON(http.StatusOK, models.OK("Salespersons retrieved successfully", users))
}
