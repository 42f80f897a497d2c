// Package identity tracks who is signed in. The active user ID doubles as
// the namespace of the remote document store.
package identity

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Service holds the active user and notifies listeners about changes.
// The zero value is unusable, use New.
type Service struct {
	mu        sync.Mutex
	userID    string
	signedIn  bool
	seq       uint64
	listeners map[uint64]func(userID string, signedIn bool)
}

func New() *Service {
	return &Service{
		listeners: make(map[uint64]func(string, bool)),
	}
}

// Current returns the active user ID. The second return value is false when
// nobody is signed in.
func (s *Service) Current() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.userID, s.signedIn
}

// SignIn sets the active user and notifies all listeners. Signing in the
// user that is already active is a no-op.
func (s *Service) SignIn(userID string) {
	s.mu.Lock()
	if s.signedIn && s.userID == userID {
		s.mu.Unlock()
		return
	}

	s.userID = userID
	s.signedIn = true
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	log.Info().Str("user", userID).Msg("user signed in")

	for _, notify := range listeners {
		notify(userID, true)
	}
}

// SignOut clears the active user and notifies all listeners. Signing out
// while nobody is signed in is a no-op.
func (s *Service) SignOut() {
	s.mu.Lock()
	if !s.signedIn {
		s.mu.Unlock()
		return
	}

	userID := s.userID
	s.userID = ""
	s.signedIn = false
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	log.Info().Str("user", userID).Msg("user signed out")

	for _, notify := range listeners {
		notify("", false)
	}
}

// OnChange registers a listener for sign-in and sign-out events. It is
// called synchronously, after the change took effect. The returned function
// removes the listener again.
func (s *Service) OnChange(notify func(userID string, signedIn bool)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	id := s.seq
	s.listeners[id] = notify

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		delete(s.listeners, id)
	}
}

// snapshotListeners must be called with the lock held.
func (s *Service) snapshotListeners() []func(string, bool) {
	listeners := make([]func(string, bool), 0, len(s.listeners))
	for _, notify := range s.listeners {
		listeners = append(listeners, notify)
	}
	return listeners
}
