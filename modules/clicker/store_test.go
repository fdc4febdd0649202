package clicker_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/passgame/modules/clicker"
	"github.com/dmitrymomot/passgame/pkg/mongo"
	"github.com/dmitrymomot/passgame/pkg/pg"
	"github.com/dmitrymomot/passgame/pkg/redis"
)

func exerciseStore(t *testing.T, store clicker.Store) {
	t.Helper()
	ctx := context.Background()
	id := uuid.New()

	_, err := store.Load(ctx, id)
	require.ErrorIs(t, err, clicker.ErrStateNotFound)

	st := clicker.NewState()
	st.Clicks = 42
	st.Multiplier = 3
	st.PowerUps[1].Active = true
	require.NoError(t, store.Save(ctx, id, st))

	got, err := store.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, st, got)

	st.Clicks = 43
	require.NoError(t, store.Save(ctx, id, st))
	got, err = store.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(43), got.Clicks)
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	exerciseStore(t, clicker.NewMemoryStore(8, nil))
}

func TestMemoryStore_IsolatesCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := clicker.NewMemoryStore(8, nil)
	id := uuid.New()

	st := clicker.NewState()
	require.NoError(t, store.Save(ctx, id, st))
	st.PowerUps[0].Active = true

	got, err := store.Load(ctx, id)
	require.NoError(t, err)
	assert.False(t, got.PowerUps[0].Active)
}

func TestMemoryStore_Evicts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	var evicted []uuid.UUID
	store := clicker.NewMemoryStore(2, func(id uuid.UUID) { evicted = append(evicted, id) })

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for _, id := range ids {
		require.NoError(t, store.Save(ctx, id, clicker.NewState()))
	}

	assert.Equal(t, 2, store.Len())
	assert.Equal(t, []uuid.UUID{ids[0]}, evicted)
	_, err := store.Load(ctx, ids[0])
	assert.ErrorIs(t, err, clicker.ErrStateNotFound)
}

func TestRedisStore(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}

	client, err := redis.Connect(context.Background(), redis.Config{
		ConnectionURL:  url,
		RetryAttempts:  1,
		ConnectTimeout: 5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	exerciseStore(t, clicker.NewRedisStore(client, time.Minute))
}

func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}

	ctx := context.Background()
	cfg := pg.Config{ConnectionString: dsn, RetryAttempts: 1, MigrationsTable: "schema_migrations"}
	pool, err := pg.Connect(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, pg.Migrate(ctx, pool, clicker.Migrations(), cfg, nil))
	exerciseStore(t, clicker.NewPostgresStore(pool))
}

func TestMongoStore(t *testing.T) {
	url := os.Getenv("MONGODB_URL")
	if url == "" {
		t.Skip("MONGODB_URL not set")
	}

	ctx := context.Background()
	db, err := mongo.NewWithDatabase(ctx, mongo.Config{
		ConnectionURL: url,
		Database:      "passgame_test",
		RetryAttempts: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Client().Disconnect(context.Background()) })

	store := clicker.NewMongoStore(db)
	require.NoError(t, store.EnsureIndexes(ctx, time.Hour))
	exerciseStore(t, store)
}
