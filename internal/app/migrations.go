package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

type migration struct {
	version int
	sql     string
}

// migrations применяются по порядку, каждая в своей транзакции.
// Уже применённые версии хранятся в schema_migrations
var migrations = []migration{
	{1, migration001Users},
	{2, migration002Sessions},
	{3, migration003GameRecords},
	{4, migration004GameConfig},
}

func runMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	for _, m := range migrations {
		applied, err := applyMigration(ctx, pool, m)
		if err != nil {
			return fmt.Errorf("migration %d: %w", m.version, err)
		}
		if applied {
			log.Infof("migration %d applied", m.version)
		}
	}
	return nil
}

func applyMigration(ctx context.Context, pool *pgxpool.Pool, m migration) (bool, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	var exists bool
	err = tx.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)", m.version,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	if _, err = tx.Exec(ctx, m.sql); err != nil {
		return false, err
	}
	if _, err = tx.Exec(ctx, "INSERT INTO schema_migrations (version) VALUES ($1)", m.version); err != nil {
		return false, err
	}

	return true, tx.Commit(ctx)
}

const migration001Users = `
CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    name VARCHAR(64) NOT NULL,
    login VARCHAR(64) UNIQUE NOT NULL,
    password_hash TEXT NOT NULL,
    balance BIGINT NOT NULL DEFAULT 0 CHECK (balance >= 0),
    role VARCHAR(16) NOT NULL DEFAULT 'player',
    status VARCHAR(16) NOT NULL DEFAULT 'active',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

const migration002Sessions = `
CREATE TABLE IF NOT EXISTS sessions (
    session_id VARCHAR(64) PRIMARY KEY,
    user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    refresh_hash TEXT NOT NULL,
    expired_time TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_expired ON sessions(expired_time);
`

const migration003GameRecords = `
CREATE TABLE IF NOT EXISTS game_records (
    id BIGSERIAL PRIMARY KEY,
    round_id VARCHAR(16) NOT NULL,
    user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    bet_amount BIGINT NOT NULL,
    multiplier DOUBLE PRECISION NOT NULL DEFAULT 1,
    win_amount BIGINT NOT NULL DEFAULT 0,
    balance_after BIGINT NOT NULL,
    game_phase VARCHAR(16) NOT NULL,
    result VARCHAR(16) NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_records_user ON game_records(user_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_records_created ON game_records(created_at);
`

const migration004GameConfig = `
CREATE TABLE IF NOT EXISTS game_config (
    id INTEGER PRIMARY KEY,
    bet_list JSONB NOT NULL,
    mul_steps JSONB NOT NULL,
    rtp DOUBLE PRECISION NOT NULL DEFAULT 0.96,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`
