package backend

import (
	"context"
	"net/http"

	"github.com/lordhost/storefront-client/internal/core/domain"
	"github.com/lordhost/storefront-client/internal/core/ports"
)

// AuthGateway calls the auth function.
type AuthGateway struct {
	client   *Client
	endpoint string
}

func NewAuthGateway(client *Client, endpoint string) *AuthGateway {
	return &AuthGateway{client: client, endpoint: endpoint}
}

type authEnvelope struct {
	Success bool         `json:"success"`
	Error   string       `json:"error"`
	User    *domain.User `json:"user"`
	Token   string       `json:"token"`
}

func (g *AuthGateway) Authenticate(ctx context.Context, req ports.AuthRequest) (*ports.AuthResponse, error) {
	var env authEnvelope
	status, err := g.client.do(ctx, http.MethodPost, g.endpoint, nil, req, &env)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResponse{
		StatusCode: status,
		Success:    env.Success,
		Error:      env.Error,
		User:       env.User,
		Token:      env.Token,
	}, nil
}
