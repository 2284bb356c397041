package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/HSouheill/salesapp_backend/config"
	"github.com/HSouheill/salesapp_backend/models"
	"github.com/HSouheill/salesapp_backend/repositories"
)

// AuthController contains registration and login logic
type AuthController struct {
	users     repositories.UserRepository
	matchMode config.LoginMatchMode
	logger    *zap.Logger
}

// NewAuthController creates a new auth controller
func NewAuthController(users repositories.UserRepository, matchMode config.LoginMatchMode, logger *zap.Logger) *AuthController {
	return &AuthController{
		users:     users,
		matchMode: matchMode,
		logger:    logger.Named("auth"),
	}
}

// Register creates a user unless one already has the same phone or email
func (ac *AuthController) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := bindRequest(c, &req); err != nil {
		return respondError(c, ac.logger, err)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	exists, err := ac.users.ExistsByPhoneOrEmail(ctx, req.Phone, req.Email)
	if err != nil {
		return respondError(c, ac.logger, err)
	}
	if exists {
		return respondError(c, ac.logger, models.ErrDuplicateUser)
	}

	user := req.User()
	if err := ac.users.Create(ctx, user); err != nil {
		return respondError(c, ac.logger, err)
	}

	ac.logger.Info("user registered", zap.String("userId", user.ID.Hex()), zap.String("role", string(user.Role)))
	return c.JSON(http.StatusOK, models.OK("Registration successful", nil))
}

// Login looks up a user by the credentials in the body
func (ac *AuthController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := bindRequest(c, &req); err != nil {
		return respondError(c, ac.logger, err)
	}

	filter, err := ac.loginFilter(req)
	if err != nil {
		return respondError(c, ac.logger, err)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := ac.users.FindOne(ctx, filter)
	if errors.Is(err, models.ErrNotFound) {
		return respondError(c, ac.logger, models.ErrInvalidCredentials)
	}
	if err != nil {
		return respondError(c, ac.logger, err)
	}

	return c.JSON(http.StatusOK, models.OK("Login successful", user.WithoutPassword()))
}

// loginFilter builds the user lookup for the configured match mode
func (ac *AuthController) loginFilter(req models.LoginRequest) (models.UserFilter, error) {
	if ac.matchMode == config.LoginMatchPartial {
		if req.Email == "" && req.Phone == "" {
			return models.UserFilter{}, missingFieldError{field: "email or phone"}
		}
		return models.UserFilter{
			Email:    req.Email,
			Phone:    req.Phone,
			Password: req.Password,
			Role:     req.Role,
		}, nil
	}

	if req.Email == "" {
		return models.UserFilter{}, missingFieldError{field: "email"}
	}
	return models.UserFilter{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}, nil
}

// ChangePassword overwrites the password of the given user
func (ac *AuthController) ChangePassword(c echo.Context) error {
	var req models.ChangePasswordRequest
	if err := bindRequest(c, &req); err != nil {
		return respondError(c, ac.logger, err)
	}

	userID, err := models.ParseID(req.UserID)
	if err != nil {
		return respondError(c, ac.logger, err)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := ac.users.UpdatePassword(ctx, userID, req.Password); err != nil {
		return respondError(c, ac.logger, err)
	}

	return c.JSON(http.StatusOK, models.OK("Password changed successfully", nil))
}
