package ports

import (
	"context"

	"github.com/lordhost/storefront-client/internal/core/domain"
)

// LineItems is the three-way price breakdown shown under the order form.
type LineItems struct {
	Base  int `json:"base"`
	Slots int `json:"slots"`
	Days  int `json:"days"`
	Total int `json:"total"`
}

// DraftContact holds contact fields prefilled from the signed-in user.
type DraftContact struct {
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone,omitempty"`
}

// SubmissionSnapshot is a consistent copy of the controller state for rendering.
type SubmissionSnapshot struct {
	State   domain.SubmissionState     `json:"state"`
	Draft   *domain.OrderDraft         `json:"draft,omitempty"`
	Result  *domain.ProvisioningResult `json:"result,omitempty"`
	Message string                     `json:"message,omitempty"`
}

// OrderService drives the order dialog.
type OrderService interface {
	Submit(ctx context.Context, draft domain.OrderDraft) (*domain.ProvisioningResult, error)
	Reset()
	Snapshot() SubmissionSnapshot
	Prefill() DraftContact
	Quote(plan domain.Plan, slots, days int) LineItems
}
