package ports

import (
	"context"

	"github.com/lordhost/storefront-client/internal/core/domain"
)

// Auth actions understood by the auth endpoint.
const (
	ActionLogin    = "login"
	ActionRegister = "register"
)

// AuthRequest is the body posted to the auth endpoint.
type AuthRequest struct {
	Action   string `json:"action"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// AuthResponse is the decoded auth endpoint reply together with its HTTP
// status. User is nil when the body did not carry one.
type AuthResponse struct {
	StatusCode int
	Success    bool
	Error      string
	User       *domain.User
	Token      string
}

// AuthGateway performs the remote auth call. It returns an error only when no
// response could be obtained; rejections are reported through AuthResponse.
type AuthGateway interface {
	Authenticate(ctx context.Context, req AuthRequest) (*AuthResponse, error)
}
