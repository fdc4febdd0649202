package clicker

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"io/fs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/passgame/pkg/pg"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrations returns the goose migrations that create the clicker tables.
func Migrations() fs.FS {
	sub, err := fs.Sub(migrations, "migrations")
	if err != nil {
		panic(err)
	}
	return sub
}

// DBTX is the subset of *pgxpool.Pool used by PostgresStore.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	loadStateQuery = `SELECT state FROM clicker_sessions WHERE session_id = $1`
	saveStateQuery = `
INSERT INTO clicker_sessions (session_id, state, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (session_id) DO UPDATE SET state = EXCLUDED.state, updated_at = now()`
)

// PostgresStore keeps each session as a jsonb row in clicker_sessions.
type PostgresStore struct {
	db DBTX
}

func NewPostgresStore(db DBTX) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Load(ctx context.Context, session uuid.UUID) (State, error) {
	var data []byte
	if err := s.db.QueryRow(ctx, loadStateQuery, session).Scan(&data); err != nil {
		if pg.IsNotFoundError(err) {
			return State{}, ErrStateNotFound
		}
		return State{}, errors.Join(ErrLoadState, err)
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return State{}, errors.Join(ErrLoadState, err)
	}
	return st, nil
}

func (s *PostgresStore) Save(ctx context.Context, session uuid.UUID, state State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return errors.Join(ErrSaveState, err)
	}
	if _, err := s.db.Exec(ctx, saveStateQuery, session, data); err != nil {
		return errors.Join(ErrSaveState, err)
	}
	return nil
}
