package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/lordhost/storefront-client/internal/core/domain"
	"github.com/lordhost/storefront-client/internal/core/ports"
)

// SessionManager owns the authentication session: it restores it from the
// store, replaces it on login/register and drops it on logout. It is the only
// writer of session state.
type SessionManager struct {
	gateway ports.AuthGateway
	store   ports.SessionStore
	log     zerolog.Logger

	rejectExpired bool
	now           func() time.Time

	mu      sync.RWMutex
	session *domain.Session

	// persistMu is held across a memory change and the matching store write so
	// the store never ends up holding a pair that memory has already dropped.
	persistMu sync.Mutex
}

// SessionOption customises a SessionManager.
type SessionOption func(*SessionManager)

// WithExpiredTokenRejection makes Restore discard a persisted session whose
// token is a JWT with an exp claim in the past. Tokens that are not JWTs are
// unaffected.
func WithExpiredTokenRejection() SessionOption {
	return func(m *SessionManager) { m.rejectExpired = true }
}

// WithClock overrides the time source used for token expiry checks.
func WithClock(now func() time.Time) SessionOption {
	return func(m *SessionManager) { m.now = now }
}

func NewSessionManager(gateway ports.AuthGateway, store ports.SessionStore, log zerolog.Logger, opts ...SessionOption) *SessionManager {
	m := &SessionManager{
		gateway: gateway,
		store:   store,
		log:     log,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Restore loads the persisted session. It reports whether the manager ended up
// authenticated. Partial or corrupt persisted state is treated as absent.
func (m *SessionManager) Restore(ctx context.Context) bool {
	m.persistMu.Lock()
	defer m.persistMu.Unlock()

	persisted, err := m.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			m.log.Warn().Err(err).Msg("session restore: store unavailable")
		}
		return false
	}

	if len(persisted.User) == 0 || persisted.Token == "" {
		m.log.Warn().Msg("session restore: partial session discarded")
		m.discard(ctx)
		return false
	}

	user, err := domain.ParseUser(persisted.User)
	if err != nil {
		m.log.Warn().Err(err).Msg("session restore: corrupt user discarded")
		m.discard(ctx)
		return false
	}

	if m.rejectExpired && m.tokenExpired(persisted.Token) {
		m.log.Info().Str("email", user.Email).Msg("session restore: token expired")
		m.discard(ctx)
		return false
	}

	m.mu.Lock()
	m.session = &domain.Session{User: user, Token: persisted.Token}
	m.mu.Unlock()

	m.log.Info().Int("user_id", user.ID).Str("email", user.Email).Msg("session restored")
	return true
}

// Login authenticates with email and password.
func (m *SessionManager) Login(ctx context.Context, email, password string) (*domain.User, error) {
	return m.authenticate(ctx, ports.AuthRequest{
		Action:   ports.ActionLogin,
		Email:    email,
		Password: password,
	}, domain.MsgLoginFailed)
}

// Register creates an account and signs it in.
func (m *SessionManager) Register(ctx context.Context, email, password, fullName, phone string) (*domain.User, error) {
	return m.authenticate(ctx, ports.AuthRequest{
		Action:   ports.ActionRegister,
		Email:    email,
		Password: password,
		FullName: fullName,
		Phone:    phone,
	}, domain.MsgRegistrationFailed)
}

func (m *SessionManager) authenticate(ctx context.Context, req ports.AuthRequest, fallback string) (*domain.User, error) {
	resp, err := m.gateway.Authenticate(ctx, req)
	if err != nil {
		m.log.Error().Err(err).Str("action", req.Action).Msg("auth request failed")
		return nil, &domain.AuthError{Message: fallback, Err: err}
	}

	if !isSuccessStatus(resp.StatusCode) || !resp.Success || resp.User == nil || resp.Token == "" {
		m.log.Info().
			Str("action", req.Action).
			Int("status_code", resp.StatusCode).
			Str("reason", resp.Error).
			Msg("auth rejected")
		return nil, &domain.AuthError{
			Message:    domain.MessageOr(resp.Error, fallback),
			StatusCode: resp.StatusCode,
		}
	}

	user := *resp.User
	raw, err := json.Marshal(user)
	if err != nil {
		return nil, &domain.AuthError{Message: fallback, Err: err}
	}

	m.persistMu.Lock()
	m.mu.Lock()
	m.session = &domain.Session{User: user, Token: resp.Token}
	m.mu.Unlock()

	if err := m.store.Save(ctx, ports.PersistedSession{User: raw, Token: resp.Token}); err != nil {
		m.log.Warn().Err(err).Msg("session persist failed, keeping in-memory session")
	}
	m.persistMu.Unlock()

	m.log.Info().Str("action", req.Action).Int("user_id", user.ID).Msg("authenticated")
	return &user, nil
}

// Logout drops the session from memory and storage. Storage failures are
// logged only.
func (m *SessionManager) Logout(ctx context.Context) {
	m.persistMu.Lock()
	defer m.persistMu.Unlock()

	m.mu.Lock()
	m.session = nil
	m.mu.Unlock()
	m.discard(ctx)
	m.log.Info().Msg("logged out")
}

// Current returns a copy of the session, if any.
func (m *SessionManager) Current() (domain.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session == nil {
		return domain.Session{}, false
	}
	return *m.session, true
}

// User returns the signed-in user or nil.
func (m *SessionManager) User() *domain.User {
	s, ok := m.Current()
	if !ok {
		return nil
	}
	return &s.User
}

// IsAuthenticated is true iff both user and token are present.
func (m *SessionManager) IsAuthenticated() bool {
	s, ok := m.Current()
	return ok && s.User.Email != "" && s.Token != ""
}

func (m *SessionManager) discard(ctx context.Context) {
	if err := m.store.Clear(ctx); err != nil {
		m.log.Warn().Err(err).Msg("session clear failed")
	}
}

// tokenExpired inspects the token without verifying its signature; the client
// has no key and only needs the exp claim.
func (m *SessionManager) tokenExpired(token string) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(m.now())
}

func isSuccessStatus(code int) bool {
	return code >= 200 && code < 300
}
