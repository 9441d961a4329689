package api

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session holds the bearer credential for one authenticated user. It is
// created at login, optionally persisted to a file between runs, and
// cleared at logout. Nothing else in the client touches token state.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	Username     string `json:"username,omitempty"`

	path string
}

// NewSession returns an empty session backed by the given file. An empty
// path keeps the session in memory only.
func NewSession(path string) *Session {
	return &Session{path: path}
}

// LoadSession reads a previously saved session. A missing file yields an
// empty, unauthenticated session rather than an error.
func LoadSession(path string) (*Session, error) {
	s := NewSession(path)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse session file: %w", err)
	}
	return s, nil
}

// Set installs a fresh credential after a successful login.
func (s *Session) Set(access, refresh, username string) {
	s.AccessToken = access
	s.RefreshToken = refresh
	s.Username = username
}

// Authenticated reports whether a usable credential is present. If the
// token is a JWT with an exp claim, a token already past its expiry is
// treated as absent; an opaque token is assumed live and left for the
// server to judge.
func (s *Session) Authenticated() bool {
	if s == nil || s.AccessToken == "" {
		return false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.AccessToken, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return exp.After(time.Now())
}

// Save persists the session to its backing file with owner-only access.
func (s *Session) Save() error {
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// Clear wipes the credential and removes the backing file.
func (s *Session) Clear() error {
	s.AccessToken = ""
	s.RefreshToken = ""
	s.Username = ""
	if s.path == "" {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
