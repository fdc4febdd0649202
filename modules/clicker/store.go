package clicker

import (
	"context"

	"github.com/google/uuid"
)

// Store persists click counters by session. Load returns ErrStateNotFound
// for unknown sessions.
type Store interface {
	Load(ctx context.Context, session uuid.UUID) (State, error)
	Save(ctx context.Context, session uuid.UUID, state State) error
}
