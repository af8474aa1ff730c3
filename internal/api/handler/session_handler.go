package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lordhost/storefront-client/internal/api/metrics"
	"github.com/lordhost/storefront-client/internal/core/domain"
	"github.com/lordhost/storefront-client/internal/core/ports"
)

// SessionHandler exposes the signed-in state. The bearer token never leaves
// the process.
type SessionHandler struct {
	sessions ports.SessionService
}

func NewSessionHandler(sessions ports.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Current handles GET /v1/session.
//
// @Summary      Current session
// @Tags         session
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /v1/session [get]
func (h *SessionHandler) Current(c echo.Context) error {
	user := h.sessions.User()
	if user == nil || !h.sessions.IsAuthenticated() {
		return c.JSON(http.StatusOK, sessionResponse{})
	}
	return c.JSON(http.StatusOK, sessionResponse{Authenticated: true, User: user})
}

// Login handles POST /v1/session/login.
//
// @Summary      Sign in
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/session/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.sessions.Login(c.Request().Context(), req.Email, req.Password)
	recordAuth(ports.ActionLogin, err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{Authenticated: true, User: user})
}

// Register handles POST /v1/session/register.
//
// @Summary      Create an account and sign in
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/session/register [post]
func (h *SessionHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.sessions.Register(c.Request().Context(), req.Email, req.Password, req.FullName, req.Phone)
	recordAuth(ports.ActionRegister, err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, sessionResponse{Authenticated: true, User: user})
}

// Logout handles DELETE /v1/session. It always succeeds.
//
// @Summary      Sign out
// @Tags         session
// @Success      204
// @Router       /v1/session [delete]
func (h *SessionHandler) Logout(c echo.Context) error {
	h.sessions.Logout(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

func recordAuth(action string, err error) {
	outcome := metrics.OutcomeSuccess
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrAuth):
		var authErr *domain.AuthError
		if errors.As(err, &authErr) && authErr.Err != nil {
			outcome = metrics.OutcomeError
		} else {
			outcome = metrics.OutcomeRejected
		}
	default:
		outcome = metrics.OutcomeError
	}
	metrics.AuthAttemptsTotal.WithLabelValues(action, outcome).Inc()
}
