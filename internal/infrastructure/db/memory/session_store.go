// Package memory is a process-local session store for ephemeral runs.
package memory

import (
	"context"
	"sync"

	"github.com/lordhost/storefront-client/internal/core/domain"
	"github.com/lordhost/storefront-client/internal/core/ports"
)

type SessionStore struct {
	mu    sync.Mutex
	user  []byte
	token string
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

func (s *SessionStore) Load(_ context.Context) (ports.PersistedSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.user) == 0 && s.token == "" {
		return ports.PersistedSession{}, domain.ErrSessionNotFound
	}
	return ports.PersistedSession{User: append([]byte(nil), s.user...), Token: s.token}, nil
}

func (s *SessionStore) Save(_ context.Context, p ports.PersistedSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = append([]byte(nil), p.User...)
	s.token = p.Token
	return nil
}

func (s *SessionStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.token = ""
	return nil
}

func (s *SessionStore) Ping(context.Context) error { return nil }
