package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/lordhost/storefront-client/internal/core/domain"
	"github.com/lordhost/storefront-client/internal/core/ports"
)

// ProvisioningGateway calls the orders function: POST creates an order, GET
// lists the orders of one email.
type ProvisioningGateway struct {
	client   *Client
	endpoint string
}

func NewProvisioningGateway(client *Client, endpoint string) *ProvisioningGateway {
	return &ProvisioningGateway{client: client, endpoint: endpoint}
}

type createOrderEnvelope struct {
	Success bool                       `json:"success"`
	Error   string                     `json:"error"`
	Server  *domain.ProvisioningResult `json:"server"`
}

type listOrdersEnvelope struct {
	Orders []domain.OrderRecord `json:"orders"`
	Error  string               `json:"error"`
}

func (g *ProvisioningGateway) CreateOrder(ctx context.Context, req ports.CreateOrderRequest, idempotencyKey string) (*ports.CreateOrderResponse, error) {
	var headers map[string]string
	if idempotencyKey != "" {
		headers = map[string]string{headerIdemKey: idempotencyKey}
	}

	var env createOrderEnvelope
	status, err := g.client.do(ctx, http.MethodPost, g.endpoint, headers, req, &env)
	if err != nil {
		return nil, err
	}
	return &ports.CreateOrderResponse{
		StatusCode: status,
		Success:    env.Success,
		Error:      env.Error,
		Server:     env.Server,
	}, nil
}

func (g *ProvisioningGateway) ListOrders(ctx context.Context, email string) (*ports.ListOrdersResponse, error) {
	u, err := url.Parse(g.endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	q := u.Query()
	q.Set("email", email)
	u.RawQuery = q.Encode()

	var env listOrdersEnvelope
	status, err := g.client.do(ctx, http.MethodGet, u.String(), nil, nil, &env)
	if err != nil {
		return nil, err
	}
	return &ports.ListOrdersResponse{
		StatusCode: status,
		Orders:     env.Orders,
		Error:      env.Error,
	}, nil
}
