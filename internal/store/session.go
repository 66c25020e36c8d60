// Package store holds the client-side state containers: the persisted
// auth session, the notification inbox, the review feed and transient
// toasts. Containers are explicit and injectable, never package-level
// singletons.
package store

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/datsan-vn/datsan-go/internal/domain"
	"github.com/datsan-vn/datsan-go/internal/logger"
)

// SessionStore persists the auth session across runs.
type SessionStore interface {
	// Load returns the stored session, or domain.ErrNoSession.
	Load(ctx context.Context) (*domain.AuthSession, error)
	// Save replaces the stored session.
	Save(ctx context.Context, session *domain.AuthSession) error
	// Clear removes the stored session. Clearing an empty store is
	// not an error.
	Clear(ctx context.Context) error
}

// SessionManager keeps the live session in memory on top of a
// SessionStore and feeds the bearer token to the API client. All
// methods are safe for concurrent use.
type SessionManager struct {
	mu      sync.RWMutex
	store   SessionStore
	session *domain.AuthSession
	log     *logger.Logger

	onLogout []func()
}

// NewSessionManager creates a manager over the given store.
func NewSessionManager(store SessionStore, log *logger.Logger) *SessionManager {
	if log == nil {
		log = logger.Get()
	}
	return &SessionManager{store: store, log: log}
}

// Bootstrap loads the persisted session at startup, dropping it when
// the token already expired.
func (m *SessionManager) Bootstrap(ctx context.Context) error {
	session, err := m.store.Load(ctx)
	if err != nil {
		if err == domain.ErrNoSession {
			return nil
		}
		return err
	}
	if session.IsExpired(time.Now()) {
		m.log.Info("dropping expired session", zap.String("user_id", session.UserID))
		return m.store.Clear(ctx)
	}
	m.mu.Lock()
	m.session = session
	m.mu.Unlock()
	return nil
}

// Login installs and persists a fresh session.
func (m *SessionManager) Login(ctx context.Context, session *domain.AuthSession) error {
	m.mu.Lock()
	m.session = session
	m.mu.Unlock()
	return m.store.Save(ctx, session)
}

// Logout clears the session in memory and on disk, then runs the
// registered logout hooks.
func (m *SessionManager) Logout(ctx context.Context) error {
	m.mu.Lock()
	m.session = nil
	hooks := m.onLogout
	m.mu.Unlock()

	err := m.store.Clear(ctx)
	for _, hook := range hooks {
		hook()
	}
	return err
}

// ForceLogout is wired as the API client's unauthorized handler: the
// backend signalled 401/403, so the session is gone regardless of what
// the store thinks.
func (m *SessionManager) ForceLogout() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := m.Logout(ctx); err != nil {
		m.log.Warn("failed to clear session after forced logout", zap.Error(err))
	}
}

// OnLogout registers a hook that runs after every logout, forced or
// not. Hooks surface the re-login prompt.
func (m *SessionManager) OnLogout(hook func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onLogout = append(m.onLogout, hook)
}

// Current returns the live session, or nil when logged out.
func (m *SessionManager) Current() *domain.AuthSession {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session
}

// Token implements api.TokenSource.
func (m *SessionManager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session == nil {
		return ""
	}
	return m.session.Token
}

// LoggedIn reports whether a session is active.
func (m *SessionManager) LoggedIn() bool {
	return m.Current() != nil
}
