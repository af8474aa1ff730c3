// Package file persists the client session in a small JSON file, the desktop
// counterpart of browser local storage.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/lordhost/storefront-client/internal/core/domain"
	"github.com/lordhost/storefront-client/internal/core/ports"
)

const (
	dirPerm  = 0o700
	filePerm = 0o600
)

// SessionStore writes both keys into one file. Save replaces the file via
// rename, so a reader never sees one key without the other.
type SessionStore struct {
	path string
}

func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

type fileSession struct {
	User  string `json:"user,omitempty"`
	Token string `json:"token,omitempty"`
}

// Load returns the stored pair. An unreadable document is reported as an empty
// pair so the session manager discards it.
func (s *SessionStore) Load(_ context.Context) (ports.PersistedSession, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ports.PersistedSession{}, domain.ErrSessionNotFound
		}
		return ports.PersistedSession{}, fmt.Errorf("read session file: %w", err)
	}

	var doc fileSession
	if err := json.Unmarshal(raw, &doc); err != nil {
		return ports.PersistedSession{}, nil
	}
	if doc.User == "" && doc.Token == "" {
		return ports.PersistedSession{}, domain.ErrSessionNotFound
	}
	return ports.PersistedSession{User: []byte(doc.User), Token: doc.Token}, nil
}

func (s *SessionStore) Save(_ context.Context, p ports.PersistedSession) error {
	payload, err := json.Marshal(fileSession{User: string(p.User), Token: p.Token})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write session: %w", err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod session: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close session: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace session: %w", err)
	}
	return nil
}

func (s *SessionStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

// Ping checks that the session directory exists or can be created.
func (s *SessionStore) Ping(_ context.Context) error {
	return os.MkdirAll(filepath.Dir(s.path), dirPerm)
}
