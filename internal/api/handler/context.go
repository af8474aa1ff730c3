package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lordhost/storefront-client/internal/api/middleware"
	"github.com/lordhost/storefront-client/internal/core/domain"
)

// ctxSession extracts the session injected by the RequireSession middleware
// and fails fast when the route was mounted without it.
func ctxSession(c echo.Context) (domain.Session, error) {
	s, ok := c.Get(middleware.SessionKey).(domain.Session)
	if !ok || s.Token == "" {
		return domain.Session{}, echo.NewHTTPError(http.StatusUnauthorized, "not signed in")
	}
	return s, nil
}
