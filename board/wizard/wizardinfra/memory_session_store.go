package wizardinfra

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/jobdeck/jobdeck/board/wizard"
	"github.com/jobdeck/jobdeck/pkg/kernel"
)

// MemorySessionStore implements wizard.SessionStore in memory for
// tests and local development. Sessions are stored as JSON copies so
// callers never share mutable state with the store.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[kernel.WizardID][]byte

	// FailSave makes Save return an error, for exercising persistence
	// failure paths
	FailSave error
}

// NewMemorySessionStore creates an empty in-memory session store
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[kernel.WizardID][]byte),
	}
}

// Save stores or refreshes a session
func (s *MemorySessionStore) Save(_ context.Context, session *wizard.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailSave != nil {
		return s.FailSave
	}

	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	s.sessions[session.ID] = data
	return nil
}

// Get retrieves a session by ID
func (s *MemorySessionStore) Get(_ context.Context, id kernel.WizardID) (*wizard.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.sessions[id]
	if !ok {
		return nil, wizard.ErrSessionNotFound()
	}

	var session wizard.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}

	return &session, nil
}

// Delete discards a session
func (s *MemorySessionStore) Delete(_ context.Context, id kernel.WizardID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

// Len reports the number of stored sessions
func (s *MemorySessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
