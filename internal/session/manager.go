package session

import (
	"time"

	"github.com/pickleclub/reservation-backend/internal/auth"
)

// Manager wraps a Store with expiry enforcement. The bare expiry check fails
// open for undecodable tokens; the manager applies the stricter store-level
// policy of clearing any stored session whose token is found expired.
type Manager struct {
	store Store
	skew  time.Duration
	now   func() time.Time
}

// NewManager creates a Manager over the given store using the default skew.
func NewManager(store Store) *Manager {
	return &Manager{
		store: store,
		skew:  auth.DefaultExpirySkew,
		now:   time.Now,
	}
}

// NewManagerWithClock creates a Manager with an explicit clock and skew,
// for tests and callers that batch decisions at a fixed instant.
func NewManagerWithClock(store Store, skew time.Duration, now func() time.Time) *Manager {
	return &Manager{store: store, skew: skew, now: now}
}

// Current returns the active session, or nil when signed out. A stored
// session whose access token has expired is cleared and reported absent.
func (m *Manager) Current() (*Session, error) {
	sess, err := m.store.Load()
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, nil
	}

	if auth.IsTokenExpired(sess.AccessToken, m.now(), m.skew) {
		if err := m.store.Clear(); err != nil {
			return nil, err
		}
		return nil, nil
	}

	return sess, nil
}

// SignIn persists a new session.
func (m *Manager) SignIn(sess Session) error {
	return m.store.Save(&sess)
}

// SignOut clears any stored session.
func (m *Manager) SignOut() error {
	return m.store.Clear()
}
