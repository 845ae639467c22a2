package session

import (
	"context"
	"sync"
	"time"

	"registrant-auth/internal/registrant"
)

// MemoryStore keeps sessions in process memory. Sessions are lost on
// restart; use it for development and tests.
type MemoryStore struct {
	byOsuID     map[int64]Session
	byToken     map[string]int64
	nextID      int64
	registrants registrant.Store
	now         func() time.Time
	sync.RWMutex
}

func NewMemoryStore(registrants registrant.Store) *MemoryStore {
	return &MemoryStore{
		byOsuID:     make(map[int64]Session),
		byToken:     make(map[string]int64),
		nextID:      1,
		registrants: registrants,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (m *MemoryStore) FindRegistrantByToken(ctx context.Context, token string) (*registrant.Registrant, error) {
	return findRegistrant(ctx, m, m.registrants, token)
}

func (m *MemoryStore) GetRegistrantByOsuID(ctx context.Context, osuID int64) (*registrant.Registrant, error) {
	return m.registrants.GetByOsuID(ctx, osuID)
}

func (m *MemoryStore) FindByToken(_ context.Context, token string) (*Session, error) {
	m.RLock()
	defer m.RUnlock()

	osuID, ok := m.byToken[token]
	if !ok {
		return nil, nil
	}

	s := m.byOsuID[osuID]
	return &s, nil
}

func (m *MemoryStore) Upsert(_ context.Context, s Session) (*Session, error) {
	if err := validate(s); err != nil {
		return nil, upsertFailed(s.OsuID, err)
	}

	m.Lock()
	defer m.Unlock()

	stored := s
	stored.UpdatedAt = nil

	if prev, ok := m.byOsuID[s.OsuID]; ok {
		delete(m.byToken, prev.Token)
		stored.ID = prev.ID
		now := m.now()
		stored.UpdatedAt = &now
	} else {
		stored.ID = m.nextID
		m.nextID++
	}

	m.byOsuID[s.OsuID] = stored
	m.byToken[s.Token] = s.OsuID

	return &stored, nil
}
