package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lordhost/storefront-client/internal/core/domain"
	"github.com/lordhost/storefront-client/internal/core/ports"
)

func TestServerLoader_Load_ReturnsOrders(t *testing.T) {
	gw := &stubProvisioningGateway{listFn: func(context.Context, string) (*ports.ListOrdersResponse, error) {
		return &ports.ListOrdersResponse{StatusCode: 200, Orders: []domain.OrderRecord{
			{ID: 2, ServerName: "b", Status: "pending", ServerStatus: "installing"},
			{ID: 1, ServerName: "a", Status: "active"},
		}}, nil
	}}
	l := NewServerLoader(gw, nil, discardLogger)

	orders, err := l.Load(context.Background(), "ivan@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 || orders[0].ID != 2 {
		t.Fatalf("unexpected orders: %+v", orders)
	}
	if gw.listEmails[0] != "ivan@example.com" {
		t.Fatalf("unexpected email %q", gw.listEmails[0])
	}
}

func TestServerLoader_Load_MissingOrdersIsEmpty(t *testing.T) {
	gw := &stubProvisioningGateway{listFn: func(context.Context, string) (*ports.ListOrdersResponse, error) {
		return &ports.ListOrdersResponse{StatusCode: 200}, nil
	}}
	orders, err := NewServerLoader(gw, nil, discardLogger).Load(context.Background(), "a@b.c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if orders == nil || len(orders) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", orders)
	}
}

func TestServerLoader_Load_Failures(t *testing.T) {
	tests := []struct {
		name string
		fn   func(context.Context, string) (*ports.ListOrdersResponse, error)
	}{
		{"http failure", func(context.Context, string) (*ports.ListOrdersResponse, error) {
			return &ports.ListOrdersResponse{StatusCode: 500}, nil
		}},
		{"transport failure", func(context.Context, string) (*ports.ListOrdersResponse, error) {
			return nil, errors.New("no route to host")
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewServerLoader(&stubProvisioningGateway{listFn: tt.fn}, nil, discardLogger).Load(context.Background(), "a@b.c")
			if !errors.Is(err, domain.ErrLoad) {
				t.Fatalf("expected ErrLoad, got %v", err)
			}
			if err.Error() != domain.MsgLoadFailed {
				t.Fatalf("unexpected message %q", err.Error())
			}
		})
	}
}

func TestServerLoader_Load_EmptyEmail(t *testing.T) {
	gw := &stubProvisioningGateway{}
	_, err := NewServerLoader(gw, nil, discardLogger).Load(context.Background(), " ")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(gw.listEmails) != 0 {
		t.Fatal("must not query without an email")
	}
}

func TestServerLoader_LoadForSession(t *testing.T) {
	gw := &stubProvisioningGateway{listFn: func(context.Context, string) (*ports.ListOrdersResponse, error) {
		return &ports.ListOrdersResponse{StatusCode: 200}, nil
	}}

	if _, err := NewServerLoader(gw, staticSession{}, discardLogger).LoadForSession(context.Background()); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}

	session := staticSession{session: domain.Session{User: testUser(), Token: "t"}, ok: true}
	if _, err := NewServerLoader(gw, session, discardLogger).LoadForSession(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gw.listEmails[0] != "Player@Example.com" {
		t.Fatalf("expected session email as received, got %q", gw.listEmails[0])
	}
}

func TestServerLoader_NormalizeStatus(t *testing.T) {
	l := NewServerLoader(nil, nil, discardLogger)
	tests := []struct {
		name   string
		record domain.OrderRecord
		kind   domain.StatusKind
		color  string
		label  string
	}{
		{"order active", domain.OrderRecord{Status: "active"}, domain.StatusActive, "green", "Active"},
		{"server running", domain.OrderRecord{ServerStatus: "running"}, domain.StatusActive, "green", "Running"},
		{"server installing", domain.OrderRecord{ServerStatus: "installing"}, domain.StatusPending, "yellow", "Installing"},
		{"order pending", domain.OrderRecord{Status: "pending"}, domain.StatusPending, "yellow", "Pending"},
		{"suspended", domain.OrderRecord{Status: "suspended"}, domain.StatusSuspended, "orange", "Suspended"},
		{"stopped", domain.OrderRecord{ServerStatus: "stopped"}, domain.StatusSuspended, "orange", "Stopped"},
		{"unknown", domain.OrderRecord{Status: "unknown_value"}, domain.StatusUnknown, "red", "Unknown"},
		{"empty", domain.OrderRecord{}, domain.StatusUnknown, "red", "Unknown"},
		{"server status wins", domain.OrderRecord{Status: "pending", ServerStatus: "running"}, domain.StatusActive, "green", "Running"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := l.NormalizeStatus(tt.record)
			if got.Kind != tt.kind || got.Color != tt.color || got.Label != tt.label {
				t.Fatalf("expected %s/%s/%s, got %+v", tt.kind, tt.color, tt.label, got)
			}
		})
	}
}
