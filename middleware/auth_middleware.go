// middleware/auth_middleware.go
package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/HSouheill/salesapp_backend/models"
	"github.com/HSouheill/salesapp_backend/security"
)

// RoleExtractor reads the caller's claimed role from a request
type RoleExtractor func(c echo.Context) models.Role

// RoleFromQuery reads the role from a query parameter
func RoleFromQuery(param string) RoleExtractor {
	return func(c echo.Context) models.Role {
		return models.Role(c.QueryParam(param))
	}
}

// RequireRole only lets requests through whose claimed role passes
// security.Authorize. Denials are answered with status 200 and success=false.
func RequireRole(required models.Role, extract RoleExtractor, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := extract(c)
			if err := security.Authorize(role, required); err != nil {
				logger.Info("access denied",
					zap.String("path", c.Request().URL.Path),
					zap.String("role", string(role)),
					zap.String("required", string(required)),
				)
				return c.JSON(http.StatusOK, models.Fail("Access denied"))
			}
			return next(c)
		}
	}
}
