package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lordhost/storefront-client/internal/core/ports"
)

// SessionKey is the echo.Context key holding the domain.Session of the
// signed-in user.
const SessionKey = "session"

// RequireSession rejects requests while nobody is signed in and injects the
// current session into context otherwise.
func RequireSession(sessions ports.SessionReader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s, ok := sessions.Current()
			if !ok || s.Token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "not signed in")
			}

			c.Set(SessionKey, s)
			return next(c)
		}
	}
}
