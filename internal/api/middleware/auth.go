package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/stocktrack/inventory-api/internal/core/token"
)

// Context keys populated by Auth and consumed by RBAC and the handlers.
const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

// Auth extracts the bearer token, verifies it through the codec, and injects
// the identity into the request context. Missing, malformed, expired, and
// forged tokens all produce the same 401.
func Auth(codec *token.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			identity, err := codec.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(CtxUserID, identity.Subject)
			c.Set(CtxRole, identity.Role)

			return next(c)
		}
	}
}
