package ports

import "context"

// Persisted key names.
const (
	SessionKeyUser  = "user"
	SessionKeyToken = "token"
)

// PersistedSession is the raw content of the two persisted keys. Either field
// may be empty when the store holds a partial pair.
type PersistedSession struct {
	User  []byte
	Token string
}

// SessionStore is durable client storage for the session. Save and Clear act on
// both keys at once; implementations must never leave one key written without
// the other.
type SessionStore interface {
	// Load returns domain.ErrSessionNotFound when neither key is present.
	Load(ctx context.Context) (PersistedSession, error)
	Save(ctx context.Context, s PersistedSession) error
	Clear(ctx context.Context) error
	Ping(ctx context.Context) error
}
