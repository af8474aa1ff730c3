package handler

import (
	"github.com/lordhost/storefront-client/internal/core/domain"
	"github.com/lordhost/storefront-client/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Session ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required"`
	FullName string `json:"full_name" validate:"required"`
	Phone    string `json:"phone,omitempty"`
}

type sessionResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *domain.User `json:"user,omitempty"`
}

// --- Plans ---

type planResponse struct {
	domain.Plan
	MinSlots int `json:"min_slots"`
	MinDays  int `json:"min_days"`
	MaxDays  int `json:"max_days"`
}

// quoteResponse carries the line items priced on the clamped inputs.
type quoteResponse struct {
	Plan domain.PlanName `json:"plan"`
	ports.LineItems
}

// --- Orders ---

// submitOrderRequest carries the dialog fields. Required-field checks belong
// to the order controller so they are reported the same way everywhere.
type submitOrderRequest struct {
	Plan          string `json:"plan" validate:"required"`
	Slots         int    `json:"slots"`
	Days          int    `json:"days"`
	GameType      string `json:"game_type"`
	ServerName    string `json:"server_name"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone,omitempty"`
}

type provisioningResponse struct {
	domain.ProvisioningResult
	Address string `json:"address"`
}

type submitOrderResponse struct {
	State  domain.SubmissionState `json:"state"`
	Server provisioningResponse   `json:"server"`
}

// --- Servers ---

type serverResponse struct {
	domain.OrderRecord
	DisplayStatus domain.DisplayStatus `json:"display_status"`
}

type serverListResponse struct {
	Orders []serverResponse `json:"orders"`
}
