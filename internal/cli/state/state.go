package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Session stores the judge sign-in used by the HTTP submitter.
type Session struct {
	AccessToken string     `json:"access_token"`
	Username    string     `json:"username,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// SignedIn reports whether the session holds a token that has not expired.
// A nil ExpiresAt never expires.
func (s Session) SignedIn(now time.Time) bool {
	if s.AccessToken == "" {
		return false
	}
	return s.ExpiresAt == nil || now.Before(*s.ExpiresAt)
}

func Load(path string) (Session, error) {
	var st Session
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return st, nil
		}
		return st, fmt.Errorf("read session state failed: %w", err)
	}
	if len(data) == 0 {
		return st, nil
	}
	if err := json.Unmarshal(data, &st); err != nil {
		return st, fmt.Errorf("parse session state failed: %w", err)
	}
	return st, nil
}

func Save(path string, st Session) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create session state dir failed: %w", err)
	}
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session state failed: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write session state failed: %w", err)
	}
	return nil
}

func Clear(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session state failed: %w", err)
	}
	return nil
}
