package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"plantstore-admin/internal/session"
)

// RequireSession guards every dashboard route behind the operator session.
// Unauthenticated requests get a 401 pointing back at the login endpoint;
// there are no further states to this guard.
func RequireSession(sess session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !sess.Authenticated() {
				return echo.NewHTTPError(http.StatusUnauthorized, "login required")
			}
			c.Set("user_id", sess.UserID())
			return next(c)
		}
	}
}
