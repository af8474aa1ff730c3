package ports

import (
	"context"

	"github.com/lordhost/storefront-client/internal/core/domain"
)

// SessionReader is the read-only view of the session used by the order
// controller and the server loader.
type SessionReader interface {
	Current() (domain.Session, bool)
}

// SessionService is the full session manager used by the API layer.
type SessionService interface {
	SessionReader
	Restore(ctx context.Context) bool
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Register(ctx context.Context, email, password, fullName, phone string) (*domain.User, error)
	Logout(ctx context.Context)
	IsAuthenticated() bool
	User() *domain.User
}
