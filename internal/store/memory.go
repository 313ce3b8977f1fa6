package store

import (
	"context"
	"sync"
	"time"
)

type sideEntry struct {
	sides     TeamSides
	expiresAt time.Time
}

// MemoryStore keeps a thread-safe table of team sides in memory.
type MemoryStore struct {
	mu    sync.RWMutex
	ttl   time.Duration
	sides map[string]sideEntry
	now   func() time.Time
}

// NewMemoryStore constructs an empty MemoryStore. A non-positive ttl uses DefaultTTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		ttl:   ttl,
		sides: make(map[string]sideEntry),
		now:   time.Now,
	}
}

// GetSides retrieves the sides for a game if present and not expired.
func (s *MemoryStore) GetSides(ctx context.Context, gameID string) (TeamSides, bool, error) {
	_ = ctx
	s.mu.RLock()
	entry, ok := s.sides[gameID]
	s.mu.RUnlock()

	if !ok {
		return TeamSides{}, false, nil
	}
	if !s.now().Before(entry.expiresAt) {
		s.mu.Lock()
		if cur, ok := s.sides[gameID]; ok && cur.expiresAt.Equal(entry.expiresAt) {
			delete(s.sides, gameID)
		}
		s.mu.Unlock()
		return TeamSides{}, false, nil
	}
	return entry.sides, true, nil
}

// SetSides stores the sides for a game and sweeps expired entries.
func (s *MemoryStore) SetSides(ctx context.Context, gameID string, sides TeamSides) error {
	_ = ctx
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, entry := range s.sides {
		if !now.Before(entry.expiresAt) {
			delete(s.sides, id)
		}
	}
	s.sides[gameID] = sideEntry{sides: sides, expiresAt: now.Add(s.ttl)}
	return nil
}

// Len returns the number of stored entries, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sides)
}
