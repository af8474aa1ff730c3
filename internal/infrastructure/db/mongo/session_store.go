package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lordhost/storefront-client/internal/core/domain"
	"github.com/lordhost/storefront-client/internal/core/ports"
)

const sessionCollection = "client_sessions"

// SessionStore keeps the session pair in a single document per profile, so
// both keys are replaced or deleted in one write.
type SessionStore struct {
	coll    *mongo.Collection
	profile string
}

func NewSessionStore(db *mongo.Database, profile string) *SessionStore {
	if profile == "" {
		profile = "default"
	}
	return &SessionStore{coll: db.Collection(sessionCollection), profile: profile}
}

type mongoSession struct {
	Profile   string `bson:"_id"`
	User      string `bson:"user,omitempty"`
	Token     string `bson:"token,omitempty"`
	UpdatedAt int64  `bson:"updated_at"`
}

func (s *SessionStore) Load(ctx context.Context) (ports.PersistedSession, error) {
	var doc mongoSession
	if err := s.coll.FindOne(ctx, bson.M{"_id": s.profile}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ports.PersistedSession{}, domain.ErrSessionNotFound
		}
		return ports.PersistedSession{}, fmt.Errorf("find session: %w", err)
	}
	return ports.PersistedSession{User: []byte(doc.User), Token: doc.Token}, nil
}

func (s *SessionStore) Save(ctx context.Context, p ports.PersistedSession) error {
	doc := mongoSession{
		Profile:   s.profile,
		User:      string(p.User),
		Token:     p.Token,
		UpdatedAt: time.Now().UTC().Unix(),
	}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": s.profile}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": s.profile}); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *SessionStore) Ping(ctx context.Context) error {
	return s.coll.Database().Client().Ping(ctx, nil)
}
