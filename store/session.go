package store

import (
	"encoding/json"
	"errors"
	"os"
	"time"
)

// SessionTTL is how long a saved session stays valid. Past it the user
// must log in again.
const SessionTTL = 7 * 24 * time.Hour

var ErrSessionExpired = errors.New("session expired")

// Session is the on-disk snapshot of a login: the bearer token, which
// kind of account it belongs to, the connected entity as raw JSON, and
// when it was saved.
type Session struct {
	Token     string          `json:"token"`
	Role      string          `json:"role"` // volunteer or organization
	Connected json.RawMessage `json:"connected"`
	SavedAt   time.Time       `json:"savedAt"`
}

// SaveSession writes the session snapshot to path, stamping SavedAt.
func SaveSession(path string, s Session) error {
	s.SavedAt = time.Now()
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// LoadSession reads the snapshot at path. An expired session is deleted
// and reported as ErrSessionExpired; a missing file surfaces as
// os.ErrNotExist.
func LoadSession(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if time.Since(s.SavedAt) > SessionTTL {
		_ = os.Remove(path)
		return nil, ErrSessionExpired
	}
	return &s, nil
}

// ClearSession removes the snapshot. A missing file is not an error.
func ClearSession(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// RestoreConnected decodes the session's connected entity and installs it
// into the container.
func RestoreConnected[E any](c *Container[E], s *Session) error {
	var entity E
	if err := json.Unmarshal(s.Connected, &entity); err != nil {
		return err
	}
	c.Restore(&entity, s.Token)
	return nil
}
