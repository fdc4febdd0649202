package clicker

import (
	"fmt"
	"regexp"
	"time"

	"github.com/dmitrymomot/passgame/pkg/validator"
)

// Store kinds selectable through CLICKER_STORE.
const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
	StoreMongo    = "mongo"
)

var storeKind = validator.String().
	Regex(regexp.MustCompile(`^(memory|redis|postgres|mongo)$`), "must be one of memory, redis, postgres, mongo")

type Config struct {
	Store          string        `env:"CLICKER_STORE" envDefault:"memory"`
	MemoryCapacity int           `env:"CLICKER_MEMORY_CAPACITY" envDefault:"10000"`
	SessionTTL     time.Duration `env:"CLICKER_SESSION_TTL" envDefault:"720h"`
}

// Validate implements config.Validator.
func (c Config) Validate() error {
	if res := storeKind.Parse(c.Store); !res.Valid {
		return fmt.Errorf("%w %q: %w", ErrUnknownStore, c.Store, res.Err())
	}
	if c.Store == StoreMemory && c.MemoryCapacity <= 0 {
		return fmt.Errorf("clicker: memory capacity must be positive, got %d", c.MemoryCapacity)
	}
	return nil
}
