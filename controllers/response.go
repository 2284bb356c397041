package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/HSouheill/salesapp_backend/models"
)

const requestTimeout = 10 * time.Second

var errInvalidBody = errors.New("invalid request body")

// invalidValueError is returned when a well-formed body carries a value of
// the wrong type
type invalidValueError struct {
	detail string
}

func (e invalidValueError) Error() string {
	return "invalid value: " + e.detail
}

// missingFieldError is returned when a required field is absent
type missingFieldError struct {
	field string
}

func (e missingFieldError) Error() string {
	return e.field + " is required"
}

// requestContext bounds a store call by the request and the handler timeout
func requestContext(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), requestTimeout)
}

// bindRequest binds the JSON or form body into req and runs the existence checks
func bindRequest(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		if malformedBody(err) {
			return fmt.Errorf("%w: %v", errInvalidBody, err)
		}
		return invalidValueError{detail: bindErrorDetail(err)}
	}
	if err := c.Validate(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return missingFieldError{field: verrs[0].Field()}
		}
		return err
	}
	return nil
}

// malformedBody reports whether the body could not be parsed at all
func malformedBody(err error) bool {
	var syntax *json.SyntaxError
	return errors.As(err, &syntax) || errors.Is(err, io.ErrUnexpectedEOF)
}

func bindErrorDetail(err error) string {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return fmt.Sprint(he.Message)
	}
	return err.Error()
}

// respondError maps a failure onto the response envelope. Everything except
// a syntactically broken body is reported with status 200 and success=false.
func respondError(c echo.Context, logger *zap.Logger, err error) error {
	var (
		missing missingFieldError
		invalid invalidValueError
	)

	switch {
	case errors.Is(err, errInvalidBody):
		return c.JSON(http.StatusBadRequest, models.Fail("Invalid request body"))
	case errors.As(err, &invalid):
		return c.JSON(http.StatusOK, models.Response{
			Success: false,
			Message: "Invalid request body",
			Error:   invalid.detail,
		})
	case errors.As(err, &missing):
		return c.JSON(http.StatusOK, models.Fail(missing.Error()))
	case errors.Is(err, models.ErrDuplicateUser):
		return c.JSON(http.StatusOK, models.Fail("User already exists"))
	case errors.Is(err, models.ErrInvalidCredentials):
		return c.JSON(http.StatusOK, models.Fail("Invalid credentials"))
	case errors.Is(err, models.ErrInvalidIdentifier):
		return c.JSON(http.StatusOK, models.Fail("Invalid identifier"))
	case errors.Is(err, models.ErrNotFound):
		return c.JSON(http.StatusOK, models.Fail("User not found"))
	case errors.Is(err, models.ErrAccessDenied):
		return c.JSON(http.StatusOK, models.Fail("Access denied"))
	}

	logger.Error("store failure",
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return c.JSON(http.StatusOK, models.Response{
		Success: false,
		Message: "Request failed",
		Error:   err.Error(),
	})
}
