package session

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session holds the bearer token for the current user. It is created
// at startup from the persisted token file and passed explicitly to
// everything that needs authentication; there is no package-level
// state.
type Session struct {
	path  string
	token string
	now   func() time.Time
}

// Load reads any previously persisted token from path. A missing or
// unreadable file simply yields a logged-out session.
func Load(path string) *Session {
	s := &Session{path: path, now: time.Now}
	if data, err := os.ReadFile(path); err == nil {
		s.token = strings.TrimSpace(string(data))
	}
	return s
}

// Login persists the token and marks the session authenticated.
func (s *Session) Login(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, []byte(token), 0600); err != nil {
		return err
	}
	s.token = token
	return nil
}

// Logout clears the persisted token.
func (s *Session) Logout() error {
	s.token = ""
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Token returns the bearer token while it is valid, "" otherwise.
// Satisfies api.TokenSource.
func (s *Session) Token() string {
	if !s.Valid() {
		return ""
	}
	return s.token
}

// Valid reports whether the token's embedded expiry is still in the
// future. Any decode problem means invalid; it never panics.
func (s *Session) Valid() bool {
	exp, ok := s.ExpiresAt()
	if !ok {
		return false
	}
	return s.now().Before(exp)
}

// ExpiresAt decodes the expiry claim from the token's middle segment.
// The signature is not checked here — only the server can do that; the
// client merely avoids sending requests it knows will be rejected.
func (s *Session) ExpiresAt() (time.Time, bool) {
	if s.token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
