package clicker

import (
	"context"

	"github.com/google/uuid"

	"github.com/dmitrymomot/passgame/pkg/cache"
)

// MemoryStore keeps states in process, dropping the least recently used
// session once capacity is reached.
type MemoryStore struct {
	states *cache.LRU[uuid.UUID, State]
}

// NewMemoryStore creates a store holding at most capacity sessions.
// onEvict, if not nil, is told about every evicted session.
func NewMemoryStore(capacity int, onEvict func(uuid.UUID)) *MemoryStore {
	var opts []cache.Option[uuid.UUID, State]
	if onEvict != nil {
		opts = append(opts, cache.WithEvictCallback(func(id uuid.UUID, _ State) { onEvict(id) }))
	}
	return &MemoryStore{states: cache.NewLRU(capacity, opts...)}
}

func (m *MemoryStore) Load(_ context.Context, session uuid.UUID) (State, error) {
	st, ok := m.states.Get(session)
	if !ok {
		return State{}, ErrStateNotFound
	}
	return st.clone(), nil
}

func (m *MemoryStore) Save(_ context.Context, session uuid.UUID, state State) error {
	m.states.Put(session, state.clone())
	return nil
}

// Len reports the number of stored sessions.
func (m *MemoryStore) Len() int {
	return m.states.Len()
}
