// Package session holds the single bearer token the gateway forwards to
// the debt-recovery backend. The token is the only process-wide mutable
// state: written at login/logout, read by every outgoing request.
package session

import "sync"

// Store is an injected token holder. An invalidation hook runs whenever the
// backend answers 401, so the owning surface can force a re-login.
type Store struct {
	mu    sync.RWMutex
	token string

	onInvalidate func()
}

func NewStore() *Store {
	return &Store{}
}

// OnInvalidate registers the hook fired by Invalidate. Intended to be set
// once during wiring.
func (s *Store) OnInvalidate(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onInvalidate = fn
}

func (s *Store) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) Authenticated() bool {
	return s.Token() != ""
}

// Invalidate clears the token and fires the registered hook. Called on any
// 401 from the backend; there is no retry path.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.token = ""
	hook := s.onInvalidate
	s.mu.Unlock()

	if hook != nil {
		hook()
	}
}
