package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/passgame/modules/clicker"
	"github.com/dmitrymomot/passgame/pkg/config"
	"github.com/dmitrymomot/passgame/pkg/httpserver"
	"github.com/dmitrymomot/passgame/pkg/logger"
	"github.com/dmitrymomot/passgame/pkg/mongo"
	"github.com/dmitrymomot/passgame/pkg/pg"
	"github.com/dmitrymomot/passgame/pkg/ratelimiter"
	"github.com/dmitrymomot/passgame/pkg/redis"
)

// clickerStore is the selected clicker.Store with the matching click
// throttle backend, readiness checks and cleanup.
type clickerStore struct {
	clicker.Store
	throttle ratelimiter.Store
	checks   map[string]httpserver.Check
	close    func()
}

func openStore(ctx context.Context, cfg clicker.Config, log *slog.Logger) (*clickerStore, error) {
	log = log.With(logger.Component("clicker_store"), slog.String("store", cfg.Store))

	switch cfg.Store {
	case clicker.StoreMemory:
		store := clicker.NewMemoryStore(cfg.MemoryCapacity, func(id uuid.UUID) {
			log.Debug("session evicted", logger.SessionID(id))
		})
		throttle := ratelimiter.NewMemoryStore()
		log.Info("clicker store ready", slog.Int("capacity", cfg.MemoryCapacity))
		return &clickerStore{Store: store, throttle: throttle, close: throttle.Close}, nil

	case clicker.StoreRedis:
		var redisCfg redis.Config
		if err := config.Load(&redisCfg); err != nil {
			return nil, err
		}
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return nil, err
		}
		log.Info("clicker store ready")
		return &clickerStore{
			Store:    clicker.NewRedisStore(client, cfg.SessionTTL),
			throttle: ratelimiter.NewRedisStore(client, "ratelimit:click:"),
			checks:   map[string]httpserver.Check{"redis": redis.Healthcheck(client)},
			close:    func() { _ = client.Close() },
		}, nil

	case clicker.StorePostgres:
		var pgCfg pg.Config
		if err := config.Load(&pgCfg); err != nil {
			return nil, err
		}
		pool, err := pg.Connect(ctx, pgCfg)
		if err != nil {
			return nil, err
		}
		if err := pg.Migrate(ctx, pool, clicker.Migrations(), pgCfg, log); err != nil {
			pool.Close()
			return nil, err
		}
		throttle := ratelimiter.NewMemoryStore()
		log.Info("clicker store ready")
		return &clickerStore{
			Store:    clicker.NewPostgresStore(pool),
			throttle: throttle,
			checks:   map[string]httpserver.Check{"postgres": pg.Healthcheck(pool)},
			close: func() {
				throttle.Close()
				pool.Close()
			},
		}, nil

	case clicker.StoreMongo:
		var mongoCfg mongo.Config
		if err := config.Load(&mongoCfg); err != nil {
			return nil, err
		}
		db, err := mongo.NewWithDatabase(ctx, mongoCfg)
		if err != nil {
			return nil, err
		}
		disconnect := func() { _ = db.Client().Disconnect(context.Background()) }
		store := clicker.NewMongoStore(db)
		if err := store.EnsureIndexes(ctx, cfg.SessionTTL); err != nil {
			disconnect()
			return nil, err
		}
		throttle := ratelimiter.NewMemoryStore()
		log.Info("clicker store ready", slog.String("database", mongoCfg.Database))
		return &clickerStore{
			Store:    store,
			throttle: throttle,
			checks:   map[string]httpserver.Check{"mongo": mongo.Healthcheck(db.Client())},
			close: func() {
				throttle.Close()
				disconnect()
			},
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", clicker.ErrUnknownStore, cfg.Store)
}
