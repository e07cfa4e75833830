// Package report holds the most recent reports in memory.
//
// The store is process-lifetime state: nothing survives a restart, and a new
// submission overwrites the previous one. Reports are scoped to a session
// cookie so concurrent visitors do not clobber each other, with the globally
// last report kept as a fallback so a session-less download still works —
// the original single-slot behavior, behind a lock.
package report

import (
	"sync"

	"github.com/siddharth-labs/astro-report-api/internal/models"
)

// Store is a lock-protected in-memory report holder.
type Store struct {
	// Go Pattern: sync.RWMutex allows multiple concurrent readers but
	// exclusive writers — downloads read far more often than submits write.
	mu         sync.RWMutex
	bySession  map[string]*models.Report
	lastGlobal *models.Report
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		bySession: make(map[string]*models.Report),
	}
}

// Put records a report for the given session and makes it the globally most
// recent one. Last write wins; there is no merging.
func (s *Store) Put(sessionID string, r *models.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sessionID != "" {
		s.bySession[sessionID] = r
	}
	s.lastGlobal = r
}

// GetSession returns the report for the session with no global fallback:
// false means this session has not submitted anything, even if others have.
func (s *Store) GetSession(sessionID string) (*models.Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.bySession[sessionID]
	return r, ok
}

// Get returns the report for the session, falling back to the globally most
// recent one when the session has none. The second return value is false when
// the store holds nothing at all — an explicit "nothing yet" condition, not
// a fault.
func (s *Store) Get(sessionID string) (*models.Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if sessionID != "" {
		if r, ok := s.bySession[sessionID]; ok {
			return r, true
		}
	}
	if s.lastGlobal != nil {
		return s.lastGlobal, true
	}
	return nil, false
}
