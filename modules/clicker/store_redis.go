package clicker

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisKeyPrefix namespaces clicker keys: clicker:<session>.
const RedisKeyPrefix = "clicker:"

// RedisStore keeps each session as a JSON document under its own key.
type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisStore creates a store on client. A positive ttl expires idle
// sessions; every save refreshes it.
func NewRedisStore(client redis.UniversalClient, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Load(ctx context.Context, session uuid.UUID) (State, error) {
	data, err := s.client.Get(ctx, RedisKeyPrefix+session.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return State{}, ErrStateNotFound
	}
	if err != nil {
		return State{}, errors.Join(ErrLoadState, err)
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return State{}, errors.Join(ErrLoadState, err)
	}
	return st, nil
}

func (s *RedisStore) Save(ctx context.Context, session uuid.UUID, state State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return errors.Join(ErrSaveState, err)
	}
	if err := s.client.Set(ctx, RedisKeyPrefix+session.String(), data, s.ttl).Err(); err != nil {
		return errors.Join(ErrSaveState, err)
	}
	return nil
}
