package middleware

import (
	"strings"

	"expense-ledger/internal/errors"
	"expense-ledger/internal/handlers"
	"expense-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// RequireAuth guards the API behind the shared secret. The Authorization
// header carries either a session token from /api/login or the raw shared
// password; both go through the auth service.
func RequireAuth(authService services.AuthServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, ok := extractBearerToken(authHeader)
			if !ok {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			if err := authService.ValidateToken(token); err != nil {
				return handlers.SendError(c, errors.AuthExpiredToken)
			}

			return next(c)
		}
	}
}

func extractBearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if token == "" {
		return "", false
	}
	return token, true
}
