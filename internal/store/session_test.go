package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/datsan-vn/datsan-go/internal/domain"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	assert.NoError(t, err)
	return signed
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	fs := NewFileStore(path)
	ctx := context.Background()

	_, err := fs.Load(ctx)
	assert.ErrorIs(t, err, domain.ErrNoSession)

	session := &domain.AuthSession{
		UserID:    "user-1",
		Role:      "customer",
		Token:     "tok",
		CreatedAt: time.Now().Truncate(time.Second),
	}
	assert.NoError(t, fs.Save(ctx, session))

	loaded, err := fs.Load(ctx)
	assert.NoError(t, err)
	assert.Equal(t, session.UserID, loaded.UserID)
	assert.Equal(t, session.Token, loaded.Token)

	assert.NoError(t, fs.Clear(ctx))
	_, err = fs.Load(ctx)
	assert.ErrorIs(t, err, domain.ErrNoSession)

	// clearing twice is fine
	assert.NoError(t, fs.Clear(ctx))
}

func TestSessionManager_BootstrapKeepsLiveSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	fs := NewFileStore(path)
	ctx := context.Background()

	live := &domain.AuthSession{
		UserID: "user-1",
		Token:  signedToken(t, time.Now().Add(time.Hour)),
	}
	assert.NoError(t, fs.Save(ctx, live))

	m := NewSessionManager(fs, nil)
	assert.NoError(t, m.Bootstrap(ctx))
	assert.True(t, m.LoggedIn())
	assert.Equal(t, live.Token, m.Token())
}

func TestSessionManager_BootstrapDropsExpiredSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	fs := NewFileStore(path)
	ctx := context.Background()

	stale := &domain.AuthSession{
		UserID: "user-1",
		Token:  signedToken(t, time.Now().Add(-time.Hour)),
	}
	assert.NoError(t, fs.Save(ctx, stale))

	m := NewSessionManager(fs, nil)
	assert.NoError(t, m.Bootstrap(ctx))
	assert.False(t, m.LoggedIn())
	assert.Empty(t, m.Token())

	// the stale session is gone from disk too
	_, err := fs.Load(ctx)
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestSessionManager_BootstrapEmptyStore(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	m := NewSessionManager(fs, nil)
	assert.NoError(t, m.Bootstrap(context.Background()))
	assert.False(t, m.LoggedIn())
}

func TestSessionManager_LogoutRunsHooks(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	m := NewSessionManager(fs, nil)
	ctx := context.Background()

	hookRuns := 0
	m.OnLogout(func() { hookRuns++ })

	assert.NoError(t, m.Login(ctx, &domain.AuthSession{UserID: "user-1", Token: "tok"}))
	assert.True(t, m.LoggedIn())

	assert.NoError(t, m.Logout(ctx))
	assert.False(t, m.LoggedIn())
	assert.Equal(t, 1, hookRuns)
}

func TestSessionManager_ForceLogout(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	m := NewSessionManager(fs, nil)
	ctx := context.Background()

	hookRuns := 0
	m.OnLogout(func() { hookRuns++ })

	assert.NoError(t, m.Login(ctx, &domain.AuthSession{UserID: "user-1", Token: "tok"}))

	m.ForceLogout()
	assert.False(t, m.LoggedIn())
	assert.Empty(t, m.Token())
	assert.Equal(t, 1, hookRuns)
}

func TestAuthSession_TokenExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	session := &domain.AuthSession{Token: signedToken(t, exp)}

	got, ok := session.TokenExpiry()
	assert.True(t, ok)
	assert.True(t, got.Equal(exp))
	assert.False(t, session.IsExpired(time.Now()))
	assert.True(t, session.IsExpired(exp.Add(time.Second)))
}

func TestAuthSession_OpaqueTokenTreatedAsLive(t *testing.T) {
	session := &domain.AuthSession{Token: "not-a-jwt"}
	_, ok := session.TokenExpiry()
	assert.False(t, ok)
	assert.False(t, session.IsExpired(time.Now()))
}
