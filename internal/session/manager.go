// Package session holds the client's belief that a user is authenticated:
// the persisted credential pair, the in-memory session, and the inactivity
// watchdog that retires idle sessions.
package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Session is the authenticated identity plus its bearer credential.
type Session struct {
	Email string
	Token string
}

// Authenticator exchanges credentials for a bearer token. *api.Client
// satisfies this.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// Manager owns the session lifecycle. All state transitions go through it;
// consumers read via Current/Token. Methods are safe for concurrent use:
// the TUI issues API calls from command goroutines that read Token while
// the update loop mutates session state.
type Manager struct {
	store Store
	auth  Authenticator
	wd    *Watchdog
	log   *zap.Logger

	mu      sync.Mutex
	current *Session
	loading bool
}

func NewManager(store Store, auth Authenticator, inactivityLimit time.Duration, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		store:   store,
		auth:    auth,
		wd:      NewWatchdog(inactivityLimit),
		log:     log,
		loading: true,
	}
}

// Restore materializes a session from the persisted credential pair without
// re-validating it against the backend (trust-on-read). Called once at
// startup; afterwards Loading reports false.
func (m *Manager) Restore(now time.Time) error {
	token, email, err := m.store.Load()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = false
	if err != nil {
		return err
	}
	if token == "" || email == "" {
		return nil
	}
	m.current = &Session{Email: email, Token: token}
	m.wd.Arm(now)
	m.log.Info("session restored", zap.String("email", email))
	return nil
}

// Login authenticates against the backend, persists the returned credential
// and creates the session. On failure the error propagates and the session
// is left unchanged.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	token, err := m.auth.Login(ctx, email, password)
	if err != nil {
		m.log.Warn("login failed", zap.String("email", email), zap.Error(err))
		return err
	}
	if err := m.store.Save(token, email); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = &Session{Email: email, Token: token}
	m.wd.Arm(time.Now())
	m.log.Info("logged in", zap.String("email", email))
	return nil
}

// Logout clears the persisted pair and the session, and disarms the
// watchdog. Safe to call with no live session.
func (m *Manager) Logout() error {
	err := m.store.Clear()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = nil
	m.wd.Disarm()
	m.log.Info("logged out")
	return err
}

// Current returns a copy of the live session, or nil.
func (m *Manager) Current() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return nil
	}
	s := *m.current
	return &s
}

// Token implements api.TokenFunc.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return ""
	}
	return m.current.Token
}

// Loading reports whether startup restoration has not completed yet.
func (m *Manager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// Activity resets the inactivity countdown. Call for every user-activity
// signal; a no-op without a live session.
func (m *Manager) Activity(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.wd.Reset(now)
}

// ExpireIfIdle performs the watchdog logout when the countdown has elapsed.
// It fires at most once per session: the logout disarms the watchdog.
func (m *Manager) ExpireIfIdle(now time.Time) bool {
	m.mu.Lock()
	expired := m.current != nil && m.wd.Expired(now)
	m.mu.Unlock()
	if !expired {
		return false
	}
	m.log.Info("session expired after inactivity")
	_ = m.Logout()
	return true
}

// Deadline exposes the watchdog deadline (for status display and tests).
func (m *Manager) Deadline() (time.Time, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.wd.Deadline()
}
