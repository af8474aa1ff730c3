package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lordhost/storefront-client/internal/core/domain"
	"github.com/lordhost/storefront-client/internal/core/ports"
)

// ServerLoader fetches the account's orders for the dashboard.
type ServerLoader struct {
	gateway ports.ProvisioningGateway
	session ports.SessionReader
	log     zerolog.Logger
}

func NewServerLoader(gateway ports.ProvisioningGateway, session ports.SessionReader, log zerolog.Logger) *ServerLoader {
	return &ServerLoader{gateway: gateway, session: session, log: log}
}

// Load returns the orders placed with email. A missing orders array yields an
// empty, non-nil slice.
func (l *ServerLoader) Load(ctx context.Context, email string) ([]domain.OrderRecord, error) {
	if strings.TrimSpace(email) == "" {
		return nil, &domain.ValidationError{Fields: []string{"email"}}
	}

	resp, err := l.gateway.ListOrders(ctx, email)
	if err != nil {
		l.log.Error().Err(err).Str("email", email).Msg("order list request failed")
		return nil, &domain.LoadError{Message: domain.MsgLoadFailed, Err: err}
	}
	if !isSuccessStatus(resp.StatusCode) {
		l.log.Warn().Int("status_code", resp.StatusCode).Str("reason", resp.Error).Msg("order list rejected")
		return nil, &domain.LoadError{
			Message:    domain.MessageOr(resp.Error, domain.MsgLoadFailed),
			StatusCode: resp.StatusCode,
		}
	}

	orders := resp.Orders
	if orders == nil {
		orders = []domain.OrderRecord{}
	}
	l.log.Debug().Str("email", email).Int("count", len(orders)).Msg("orders loaded")
	return orders, nil
}

// LoadForSession loads the orders of the signed-in user.
func (l *ServerLoader) LoadForSession(ctx context.Context) ([]domain.OrderRecord, error) {
	if l.session == nil {
		return nil, domain.ErrNotAuthenticated
	}
	s, ok := l.session.Current()
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}
	return l.Load(ctx, s.User.Email)
}

// NormalizeStatus maps the record's two status fields to a display status.
func (l *ServerLoader) NormalizeStatus(record domain.OrderRecord) domain.DisplayStatus {
	return domain.NormalizeStatus(record)
}
