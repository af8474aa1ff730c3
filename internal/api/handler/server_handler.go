package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lordhost/storefront-client/internal/api/metrics"
	"github.com/lordhost/storefront-client/internal/core/domain"
	"github.com/lordhost/storefront-client/internal/core/ports"
)

// ServerHandler feeds the account dashboard.
type ServerHandler struct {
	servers ports.ServerService
}

func NewServerHandler(servers ports.ServerService) *ServerHandler {
	return &ServerHandler{servers: servers}
}

// List handles GET /v1/servers. Requires a session.
//
// @Summary      Orders of the signed-in account
// @Tags         servers
// @Produce      json
// @Success      200  {object}  serverListResponse
// @Failure      401  {object}  errorResponse
// @Failure      502  {object}  errorResponse
// @Router       /v1/servers [get]
func (h *ServerHandler) List(c echo.Context) error {
	if _, err := ctxSession(c); err != nil {
		return err
	}

	records, err := h.servers.LoadForSession(c.Request().Context())
	if err != nil {
		metrics.ServerListLoadsTotal.WithLabelValues(loadOutcome(err)).Inc()
		return err
	}
	metrics.ServerListLoadsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()

	out := make([]serverResponse, 0, len(records))
	for _, r := range records {
		status := h.servers.NormalizeStatus(r)
		metrics.ServerStatusTotal.WithLabelValues(string(status.Kind)).Inc()
		out = append(out, serverResponse{OrderRecord: r, DisplayStatus: status})
	}
	return c.JSON(http.StatusOK, serverListResponse{Orders: out})
}

func loadOutcome(err error) string {
	if errors.Is(err, domain.ErrValidation) {
		return metrics.OutcomeInvalid
	}
	return metrics.OutcomeError
}
