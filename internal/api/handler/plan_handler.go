package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lordhost/storefront-client/internal/core/domain"
	"github.com/lordhost/storefront-client/internal/core/ports"
)

// PlanHandler serves the tier table and live price quotes.
type PlanHandler struct {
	orders ports.OrderService
}

func NewPlanHandler(orders ports.OrderService) *PlanHandler {
	return &PlanHandler{orders: orders}
}

// List handles GET /v1/plans.
//
// @Summary      List plans
// @Tags         plans
// @Produce      json
// @Success      200  {array}  planResponse
// @Router       /v1/plans [get]
func (h *PlanHandler) List(c echo.Context) error {
	plans := domain.Plans()
	out := make([]planResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, planResponse{
			Plan:     p,
			MinSlots: domain.MinSlots,
			MinDays:  domain.MinDays,
			MaxDays:  domain.MaxDays,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// Quote handles GET /v1/plans/:name/quote.
// Missing slots or days fall back to the dialog defaults; out-of-range values
// are clamped the same way the order form clamps them.
//
// @Summary      Price breakdown
// @Tags         plans
// @Produce      json
// @Param        name   path      string  true   "Plan name (Free, Pro, VIP)"
// @Param        slots  query     int     false  "Player slots"
// @Param        days   query     int     false  "Rental days"
// @Success      200    {object}  quoteResponse
// @Failure      400    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Router       /v1/plans/{name}/quote [get]
func (h *PlanHandler) Quote(c echo.Context) error {
	plan, err := domain.LookupPlan(c.Param("name"))
	if err != nil {
		return err
	}
	draft := domain.NewDraft(plan)

	slots, err := intQuery(c, "slots", draft.Slots)
	if err != nil {
		return err
	}
	days, err := intQuery(c, "days", draft.Days)
	if err != nil {
		return err
	}

	items := h.orders.Quote(plan, slots, days)
	return c.JSON(http.StatusOK, quoteResponse{Plan: plan.Name, LineItems: items})
}

func intQuery(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be an integer")
	}
	return n, nil
}
