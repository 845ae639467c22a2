package registrant

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps registrants in process memory. It backs the memory
// session backend and tests.
type MemoryStore struct {
	store  map[int64]Registrant
	nextID int64
	sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		store:  make(map[int64]Registrant),
		nextID: 1,
	}
}

// Put inserts or replaces the registrant with the same osu id.
func (s *MemoryStore) Put(r Registrant) Registrant {
	s.Lock()
	defer s.Unlock()

	if existing, ok := s.store[r.OsuID]; ok {
		r.ID = existing.ID
		r.CreatedAt = existing.CreatedAt
		now := time.Now().UTC()
		r.UpdatedAt = &now
	} else {
		r.ID = s.nextID
		s.nextID++
		r.CreatedAt = time.Now().UTC()
	}

	s.store[r.OsuID] = r
	return r
}

func (s *MemoryStore) GetByOsuID(_ context.Context, osuID int64) (*Registrant, error) {
	s.RLock()
	defer s.RUnlock()

	if r, ok := s.store[osuID]; ok {
		return &r, nil
	}
	return nil, nil
}
