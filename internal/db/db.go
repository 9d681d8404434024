package db

import (
	"context"
	"fmt"
	"log/slog"

	_ "github.com/glebarez/go-sqlite"
	"github.com/jmoiron/sqlx"
)

const sessionSchema = `
CREATE TABLE IF NOT EXISTS sessions (
	id TEXT PRIMARY KEY,
	data TEXT NOT NULL,
	expires_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions (expires_at);`

// SQLiteConnect opens the SQLite database at path and makes sure the session
// schema exists. Use ":memory:" for a throwaway database.
func SQLiteConnect(ctx context.Context, path string) (*sqlx.DB, error) {
	pool, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// SQLite serializes writers anyway, and an in-memory database only lives
	// on a single connection.
	pool.SetMaxOpenConns(1)

	if err := pool.PingContext(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to sqlite database: %w", err)
	}
	if err := InitializeDB(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	slog.InfoContext(ctx, "Connected to sqlite database", "path", path)
	return pool, nil
}

func InitializeDB(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, sessionSchema); err != nil {
		return fmt.Errorf("failed to create sessions table: %w", err)
	}
	return nil
}
