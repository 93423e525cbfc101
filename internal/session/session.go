// Package session scopes a cart and its checkout machine to one
// client session. The ledger and the profile record stay process-wide;
// carts are never shared across sessions.
package session

import (
	"sync"

	"github.com/fjod/storefront/internal/cart"
	"github.com/fjod/storefront/internal/checkout"
	"github.com/google/uuid"
)

// Session is the per-client state: the cart, the checkout machine and
// the flash capturing navigation/notification output.
type Session struct {
	ID       string
	Cart     *cart.Store
	Checkout *checkout.Checkout
	Flash    *Flash
}

// Manager hands out sessions by id, creating them on demand.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	build    func(id string) *Session
}

func NewManager(build func(id string) *Session) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		build:    build,
	}
}

// NewID issues a fresh session id.
func (m *Manager) NewID() string {
	return uuid.NewString()
}

// Get returns the session for id, creating it if unknown.
func (m *Manager) Get(id string) *Session {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		return s
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		return s
	}
	s = m.build(id)
	m.sessions[id] = s
	return s
}
