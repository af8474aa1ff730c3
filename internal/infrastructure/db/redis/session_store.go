package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/lordhost/storefront-client/internal/core/domain"
	"github.com/lordhost/storefront-client/internal/core/ports"
)

// SessionStore keeps the session pair in two Redis strings.
// Key format: <prefix>:user and <prefix>:token
//
// MSET and DEL are single commands, so both keys are always written or removed
// together.
type SessionStore struct {
	client *redis.Client
	prefix string
}

// NewSessionStore wraps client. prefix namespaces the keys, e.g. per profile.
func NewSessionStore(client *redis.Client, prefix string) *SessionStore {
	if prefix == "" {
		prefix = "storefront:session"
	}
	return &SessionStore{client: client, prefix: prefix}
}

func (s *SessionStore) Load(ctx context.Context) (ports.PersistedSession, error) {
	vals, err := s.client.MGet(ctx, s.key(ports.SessionKeyUser), s.key(ports.SessionKeyToken)).Result()
	if err != nil {
		return ports.PersistedSession{}, fmt.Errorf("session load: %w", err)
	}

	user, _ := vals[0].(string)
	token, _ := vals[1].(string)
	if user == "" && token == "" {
		return ports.PersistedSession{}, domain.ErrSessionNotFound
	}
	return ports.PersistedSession{User: []byte(user), Token: token}, nil
}

func (s *SessionStore) Save(ctx context.Context, p ports.PersistedSession) error {
	err := s.client.MSet(ctx,
		s.key(ports.SessionKeyUser), string(p.User),
		s.key(ports.SessionKeyToken), p.Token,
	).Err()
	if err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	return nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key(ports.SessionKeyUser), s.key(ports.SessionKeyToken)).Err(); err != nil {
		return fmt.Errorf("session clear: %w", err)
	}
	return nil
}

func (s *SessionStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *SessionStore) key(name string) string {
	return fmt.Sprintf("%s:%s", s.prefix, name)
}
