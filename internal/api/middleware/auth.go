package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/guitarworld/guitar-store/internal/api/metrics"
	"github.com/guitarworld/guitar-store/internal/core/ports"
)

// StatusTokenRequired is the non-standard status code the API uses for
// missing or invalid bearer tokens.
const StatusTokenRequired = 498

// Context keys under which the Auth middleware stores verified claims.
const (
	CtxUserID   = "id"
	CtxUsername = "username"
	CtxRole     = "role"
)

// Auth validates the bearer token and injects the verified claims into the
// request context. It never touches the repositories.
func Auth(creds ports.CredentialService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(StatusTokenRequired, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenVerificationsTotal.WithLabelValues("malformed").Inc()
				return echo.NewHTTPError(StatusTokenRequired, "authorization scheme is not Bearer")
			}

			claims, err := creds.VerifyToken(parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(StatusTokenRequired, "invalid token")
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set(CtxUserID, claims.ID)
			c.Set(CtxUsername, claims.Username)
			c.Set(CtxRole, claims.Role)

			return next(c)
		}
	}
}
