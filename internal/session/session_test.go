package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func tempSession(t *testing.T) *Session {
	t.Helper()
	return Load(filepath.Join(t.TempDir(), "token"))
}

func TestValid_FutureExpiry(t *testing.T) {
	s := tempSession(t)
	require.NoError(t, s.Login(signedToken(t, time.Now().Add(time.Hour))))
	assert.True(t, s.Valid())
	assert.NotEmpty(t, s.Token())
}

func TestValid_PastExpiry(t *testing.T) {
	s := tempSession(t)
	require.NoError(t, s.Login(signedToken(t, time.Now().Add(-time.Hour))))
	assert.False(t, s.Valid())
	assert.Empty(t, s.Token(), "expired session must not hand out its token")
}

func TestValid_Garbage(t *testing.T) {
	s := tempSession(t)
	require.NoError(t, s.Login("definitely.not.a-jwt"))
	assert.False(t, s.Valid())
}

func TestValid_NoExpiryClaim(t *testing.T) {
	s := tempSession(t)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "u"})
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	require.NoError(t, s.Login(signed))
	assert.False(t, s.Valid())
}

func TestLoad_ReadsPersistedToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	tok := signedToken(t, time.Now().Add(time.Hour))
	require.NoError(t, os.WriteFile(path, []byte(tok+"\n"), 0600))

	s := Load(path)
	assert.True(t, s.Valid())
	assert.Equal(t, tok, s.Token())
}

func TestLoad_MissingFile(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "absent"))
	assert.False(t, s.Valid())
	assert.Empty(t, s.Token())
}

func TestLogout_RemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	s := Load(path)
	require.NoError(t, s.Login(signedToken(t, time.Now().Add(time.Hour))))
	require.NoError(t, s.Logout())

	assert.False(t, s.Valid())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Logout is idempotent.
	assert.NoError(t, s.Logout())
}

func TestExpiresAt_ExactBoundary(t *testing.T) {
	s := tempSession(t)
	exp := time.Now().Add(time.Minute).Truncate(time.Second)
	require.NoError(t, s.Login(signedToken(t, exp)))
	got, ok := s.ExpiresAt()
	require.True(t, ok)
	assert.Equal(t, exp.Unix(), got.Unix())

	// Strictly-before semantics at the boundary.
	s.now = func() time.Time { return exp }
	assert.False(t, s.Valid())
	s.now = func() time.Time { return exp.Add(-time.Second) }
	assert.True(t, s.Valid())
}
