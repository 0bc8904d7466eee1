package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/guitarworld/guitar-store/internal/core/domain"
)

// AdminOnly requires the Auth stage to have run and the authenticated role
// to be Admin. Role mismatches answer 401, matching the rest of the API's
// authorization failures.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if role == "" {
				return echo.NewHTTPError(StatusTokenRequired, "token not found")
			}
			if role != domain.RoleAdmin {
				return echo.NewHTTPError(http.StatusUnauthorized, "admin role required")
			}
			return next(c)
		}
	}
}

// SelfOnly restricts a route to the resource owner: the authenticated id
// must equal the named path parameter.
func SelfOnly(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, _ := c.Get(CtxUserID).(string)
			if id == "" {
				return echo.NewHTTPError(StatusTokenRequired, "token not found")
			}

			pathID := c.Param(param)
			if pathID == "" {
				return echo.NewHTTPError(http.StatusNotFound, "user id missing from path")
			}
			if id != pathID {
				return echo.NewHTTPError(http.StatusUnauthorized, "path id does not match token id")
			}
			return next(c)
		}
	}
}
