package ports

import (
	"context"

	"github.com/lordhost/storefront-client/internal/core/domain"
)

// ServerService feeds the account dashboard.
type ServerService interface {
	Load(ctx context.Context, email string) ([]domain.OrderRecord, error)
	LoadForSession(ctx context.Context) ([]domain.OrderRecord, error)
	NormalizeStatus(record domain.OrderRecord) domain.DisplayStatus
}
