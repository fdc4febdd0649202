package clicker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/passgame/pkg/logger"
)

const lockStripes = 64

// Service applies click counter operations and persists every mutation.
// Mutations on one session are serialized within the process.
type Service struct {
	store  Store
	logger *slog.Logger
	locks  [lockStripes]sync.Mutex
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// NewService creates a Service backed by store. Panics on a nil store.
func NewService(store Store, opts ...ServiceOption) *Service {
	if store == nil {
		panic("clicker: nil store")
	}
	s := &Service{
		store:  store,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("clicker"))
	return s
}

// NewSession starts a counter under a fresh session id.
func (s *Service) NewSession(ctx context.Context) (uuid.UUID, State, error) {
	id := uuid.New()
	st := NewState()
	if err := s.store.Save(ctx, id, st); err != nil {
		return uuid.Nil, State{}, err
	}
	s.logger.InfoContext(ctx, "session started", logger.SessionID(id), logger.Event("session_started"))
	return id, st, nil
}

// State returns the session's counter. Unknown sessions read as NewState.
func (s *Service) State(ctx context.Context, session uuid.UUID) (State, error) {
	return s.load(ctx, session)
}

// Increment adds one click worth State.Gain. The total stops growing at
// math.MaxInt64.
func (s *Service) Increment(ctx context.Context, session uuid.UUID) (State, error) {
	return s.update(ctx, session, "click", func(st *State) error {
		st.click()
		return nil
	})
}

// ChangeMultiplier sets the base multiplier. Values outside
// [1, MaxMultiplier] are rejected.
func (s *Service) ChangeMultiplier(ctx context.Context, session uuid.UUID, value int64) (State, error) {
	if value < 1 || value > MaxMultiplier {
		return State{}, fmt.Errorf("%w: got %d", ErrInvalidMultiplier, value)
	}
	return s.update(ctx, session, "multiplier_changed", func(st *State) error {
		st.Multiplier = value
		return nil
	})
}

// TogglePowerUp flips a power-up between active and inactive.
func (s *Service) TogglePowerUp(ctx context.Context, session uuid.UUID, key string) (State, error) {
	if _, ok := lookup(key); !ok {
		return State{}, fmt.Errorf("%w: %q", ErrUnknownPowerUp, key)
	}
	return s.update(ctx, session, "power_up_toggled", func(st *State) error {
		for i := range st.PowerUps {
			if st.PowerUps[i].Key == key {
				st.PowerUps[i].Active = !st.PowerUps[i].Active
				return nil
			}
		}
		return fmt.Errorf("%w: %q", ErrUnknownPowerUp, key)
	}, logger.PowerUp(key))
}

func (s *Service) update(ctx context.Context, session uuid.UUID, event string, fn func(*State) error, attrs ...slog.Attr) (State, error) {
	mu := &s.locks[session[0]%lockStripes]
	mu.Lock()
	defer mu.Unlock()

	st, err := s.load(ctx, session)
	if err != nil {
		return State{}, err
	}
	if err := fn(&st); err != nil {
		return State{}, err
	}
	if err := s.store.Save(ctx, session, st); err != nil {
		s.logger.ErrorContext(ctx, "failed to save state", logger.SessionID(session), logger.Error(err))
		return State{}, err
	}

	s.logger.LogAttrs(ctx, slog.LevelDebug, "state updated", append(attrs,
		logger.SessionID(session),
		logger.Event(event),
		slog.Int64("clicks", st.Clicks),
	)...)
	return st, nil
}

func (s *Service) load(ctx context.Context, session uuid.UUID) (State, error) {
	st, err := s.store.Load(ctx, session)
	if errors.Is(err, ErrStateNotFound) {
		return NewState(), nil
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load state", logger.SessionID(session), logger.Error(err))
		return State{}, err
	}
	return st.normalize(), nil
}
