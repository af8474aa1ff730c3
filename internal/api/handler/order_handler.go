package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lordhost/storefront-client/internal/api/metrics"
	"github.com/lordhost/storefront-client/internal/core/domain"
	"github.com/lordhost/storefront-client/internal/core/ports"
)

// OrderHandler drives the order dialog over HTTP.
type OrderHandler struct {
	orders ports.OrderService
}

func NewOrderHandler(orders ports.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Submit handles POST /v1/orders.
//
// @Summary      Submit an order
// @Description  Validates the draft, prices it on the plan table and creates the server.
// @Description  A second submit while one is outstanding is rejected with 409.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      submitOrderRequest  true  "Order draft"
// @Success      201   {object}  submitOrderResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /v1/orders [post]
func (h *OrderHandler) Submit(c echo.Context) error {
	var req submitOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	draft := toDraft(req)

	start := time.Now()
	result, err := h.orders.Submit(c.Request().Context(), draft)
	outcome := submitOutcome(err)
	metrics.OrdersSubmittedTotal.WithLabelValues(planLabel(req.Plan), outcome).Inc()
	metrics.OrderSubmissionDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, submitOrderResponse{
		State: domain.StateSucceeded,
		Server: provisioningResponse{
			ProvisioningResult: *result,
			Address:            result.Address(),
		},
	})
}

// Current handles GET /v1/orders/current.
//
// @Summary      Order dialog state
// @Tags         orders
// @Produce      json
// @Success      200  {object}  ports.SubmissionSnapshot
// @Router       /v1/orders/current [get]
func (h *OrderHandler) Current(c echo.Context) error {
	return c.JSON(http.StatusOK, h.orders.Snapshot())
}

// Reset handles DELETE /v1/orders/current. Ignored while a submission is in flight.
//
// @Summary      Close the order dialog
// @Tags         orders
// @Success      204
// @Router       /v1/orders/current [delete]
func (h *OrderHandler) Reset(c echo.Context) error {
	h.orders.Reset()
	return c.NoContent(http.StatusNoContent)
}

// Prefill handles GET /v1/orders/prefill.
//
// @Summary      Contact fields from the signed-in user
// @Tags         orders
// @Produce      json
// @Success      200  {object}  ports.DraftContact
// @Router       /v1/orders/prefill [get]
func (h *OrderHandler) Prefill(c echo.Context) error {
	return c.JSON(http.StatusOK, h.orders.Prefill())
}

// toDraft starts from the dialog defaults for the requested plan. An unknown
// plan name is passed through so the controller reports it as a field error.
func toDraft(req submitOrderRequest) domain.OrderDraft {
	plan, err := domain.LookupPlan(req.Plan)
	if err != nil {
		plan = domain.Plan{Name: domain.PlanName(req.Plan)}
	}
	draft := domain.NewDraft(plan)
	if req.Slots != 0 {
		draft.Slots = req.Slots
	}
	if req.Days != 0 {
		draft.Days = req.Days
	}
	if req.GameType != "" {
		draft.GameType = domain.GameType(req.GameType)
	}
	draft.ServerName = req.ServerName
	draft.CustomerName = req.CustomerName
	draft.CustomerEmail = req.CustomerEmail
	draft.CustomerPhone = req.CustomerPhone
	return draft
}

// planLabel keeps the metric's plan label within the known tiers.
func planLabel(name string) string {
	plan, err := domain.LookupPlan(name)
	if err != nil {
		return metrics.PlanUnknown
	}
	return string(plan.Name)
}

func submitOutcome(err error) string {
	var subErr *domain.SubmissionError
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, domain.ErrValidation):
		return metrics.OutcomeInvalid
	case errors.Is(err, domain.ErrBusy):
		return metrics.OutcomeBusy
	case errors.As(err, &subErr) && subErr.Err == nil:
		return metrics.OutcomeRejected
	default:
		return metrics.OutcomeError
	}
}
