package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/guitarworld/guitar-store/internal/api/middleware"
)

// ctxUserID extracts the authenticated user id injected by the Auth
// middleware. An empty id means the middleware did not run; handlers treat
// that as a missing token.
func ctxUserID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.CtxUserID).(string)
	if id == "" {
		return "", echo.NewHTTPError(middleware.StatusTokenRequired, "token not found")
	}
	return id, nil
}
