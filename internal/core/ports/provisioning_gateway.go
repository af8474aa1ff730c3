package ports

import (
	"context"

	"github.com/lordhost/storefront-client/internal/core/domain"
)

// CreateOrderRequest is the body posted to the provisioning endpoint.
// UserID is serialized as null for anonymous orders.
type CreateOrderRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone,omitempty"`
	PlanType      string `json:"planType"`
	Slots         int    `json:"slots"`
	Days          int    `json:"days"`
	TotalPrice    int    `json:"totalPrice"`
	ServerName    string `json:"serverName"`
	GameType      string `json:"gameType"`
	UserID        *int   `json:"userId"`
}

// CreateOrderResponse is the decoded reply of an order creation.
type CreateOrderResponse struct {
	StatusCode int
	Success    bool
	Error      string
	Server     *domain.ProvisioningResult
}

// ListOrdersResponse is the decoded reply of the order listing.
type ListOrdersResponse struct {
	StatusCode int
	Orders     []domain.OrderRecord
	Error      string
}

// ProvisioningGateway talks to the provisioning endpoint. Errors are returned
// only for transport or decoding failures.
type ProvisioningGateway interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest, idempotencyKey string) (*CreateOrderResponse, error)
	ListOrders(ctx context.Context, email string) (*ListOrdersResponse, error)
}
