package session

import (
	"fmt"
	"sync"

	"talentloop/internal/domain"
)

// Store keeps live interview sessions keyed by id. The core engines assume a
// single logical owner per session; the store boundary is where a hosted
// deployment adds its concurrency discipline, so the in-memory implementation
// locks around the map itself.
type Store interface {
	Insert(sess *domain.InterviewSession) error
	Get(id string) (*domain.InterviewSession, error)
	Delete(id string) error
}

// MemoryStore is the default in-process Store.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*domain.InterviewSession
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*domain.InterviewSession)}
}

func (s *MemoryStore) Insert(sess *domain.InterviewSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.sessions[sess.ID]; dup {
		return fmt.Errorf("%w: session %s already exists", domain.ErrInvalidState, sess.ID)
	}
	s.sessions[sess.ID] = sess
	return nil
}

func (s *MemoryStore) Get(id string) (*domain.InterviewSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	return sess, nil
}

func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	delete(s.sessions, id)
	return nil
}
