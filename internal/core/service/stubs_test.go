package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lordhost/storefront-client/internal/core/domain"
	"github.com/lordhost/storefront-client/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

type stubAuthGateway struct {
	fn    func(ctx context.Context, req ports.AuthRequest) (*ports.AuthResponse, error)
	calls []ports.AuthRequest
}

func (g *stubAuthGateway) Authenticate(ctx context.Context, req ports.AuthRequest) (*ports.AuthResponse, error) {
	g.calls = append(g.calls, req)
	return g.fn(ctx, req)
}

// memSessionStore mimics a durable store that outlives SessionManager
// instances, so a new manager over the same store simulates a restart.
type memSessionStore struct {
	mu       sync.Mutex
	user     []byte
	token    string
	saveErr  error
	clearErr error
	clears   int

	// When saveRelease is set, Save closes saveStarted and waits on saveRelease
	// before writing.
	saveStarted chan struct{}
	saveRelease chan struct{}
}

func (s *memSessionStore) Load(_ context.Context) (ports.PersistedSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.user) == 0 && s.token == "" {
		return ports.PersistedSession{}, domain.ErrSessionNotFound
	}
	return ports.PersistedSession{User: append([]byte(nil), s.user...), Token: s.token}, nil
}

func (s *memSessionStore) Save(_ context.Context, p ports.PersistedSession) error {
	if s.saveRelease != nil {
		close(s.saveStarted)
		<-s.saveRelease
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.user = append([]byte(nil), p.User...)
	s.token = p.Token
	return nil
}

func (s *memSessionStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clears++
	if s.clearErr != nil {
		return s.clearErr
	}
	s.user = nil
	s.token = ""
	return nil
}

func (s *memSessionStore) Ping(context.Context) error { return nil }

type stubProvisioningGateway struct {
	mu         sync.Mutex
	createFn   func(ctx context.Context, req ports.CreateOrderRequest) (*ports.CreateOrderResponse, error)
	listFn     func(ctx context.Context, email string) (*ports.ListOrdersResponse, error)
	created    []ports.CreateOrderRequest
	keys       []string
	listEmails []string
}

func (g *stubProvisioningGateway) CreateOrder(ctx context.Context, req ports.CreateOrderRequest, key string) (*ports.CreateOrderResponse, error) {
	g.mu.Lock()
	g.created = append(g.created, req)
	g.keys = append(g.keys, key)
	g.mu.Unlock()
	return g.createFn(ctx, req)
}

func (g *stubProvisioningGateway) ListOrders(ctx context.Context, email string) (*ports.ListOrdersResponse, error) {
	g.mu.Lock()
	g.listEmails = append(g.listEmails, email)
	g.mu.Unlock()
	return g.listFn(ctx, email)
}

func (g *stubProvisioningGateway) createCalls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.created)
}

type staticSession struct {
	session domain.Session
	ok      bool
}

func (s staticSession) Current() (domain.Session, bool) { return s.session, s.ok }

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

func testUser() domain.User {
	return domain.User{ID: 7, Email: "Player@Example.com", FullName: "Ivan Petrov", Phone: "+7 999 123-45-67"}
}

func okAuth(user domain.User, token string) func(context.Context, ports.AuthRequest) (*ports.AuthResponse, error) {
	return func(context.Context, ports.AuthRequest) (*ports.AuthResponse, error) {
		u := user
		return &ports.AuthResponse{StatusCode: 200, Success: true, User: &u, Token: token}, nil
	}
}

func testResult() domain.ProvisioningResult {
	return domain.ProvisioningResult{
		ServerIP:    "185.101.1.11",
		ServerPort:  7778,
		FTPHost:     "185.101.1.11",
		FTPUser:     "user_1",
		FTPPassword: "pass_1_ftP",
		DBHost:      "db.lordhost.ru",
		DBName:      "server_1",
		DBUser:      "user_1",
		DBPassword:  "dbpass_1",
	}
}

func okCreate(ctx context.Context, req ports.CreateOrderRequest) (*ports.CreateOrderResponse, error) {
	r := testResult()
	return &ports.CreateOrderResponse{StatusCode: 201, Success: true, Server: &r}, nil
}

func failCreate(context.Context, ports.CreateOrderRequest) (*ports.CreateOrderResponse, error) {
	return &ports.CreateOrderResponse{StatusCode: 502}, nil
}

func validDraft() domain.OrderDraft {
	d := domain.NewDraft(domain.MustPlan(domain.PlanVIP))
	d.Slots = 50
	d.Days = 30
	d.ServerName = "Los Santos RP"
	d.CustomerName = "Ivan Petrov"
	d.CustomerEmail = "ivan@example.com"
	return d
}
