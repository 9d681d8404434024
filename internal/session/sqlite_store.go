package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type SQLiteStore struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewSQLiteStore creates a Store on the sessions table of db.
func NewSQLiteStore(db *sqlx.DB) *SQLiteStore {
	return &SQLiteStore{db: db, now: time.Now}
}

func (s *SQLiteStore) Load(ctx context.Context, id string) (*Data, error) {
	ctx, span := tracer.Start(ctx, "SQLiteStore.Load")
	defer span.End()

	var raw string
	query := `SELECT data FROM sessions WHERE id = ? AND expires_at > ?`
	err := s.db.GetContext(ctx, &raw, query, id, s.now().Unix())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var data Data
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &data, nil
}

func (s *SQLiteStore) Save(ctx context.Context, id string, data *Data, ttl time.Duration) error {
	ctx, span := tracer.Start(ctx, "SQLiteStore.Save")
	defer span.End()

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	query := `INSERT INTO sessions (id, data, expires_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data, expires_at = excluded.expires_at`
	if _, err := s.db.ExecContext(ctx, query, id, string(raw), s.now().Add(ttl).Unix()); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "SQLiteStore.Delete")
	defer span.End()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Touch(ctx context.Context, id string, ttl time.Duration) error {
	ctx, span := tracer.Start(ctx, "SQLiteStore.Touch")
	defer span.End()

	now := s.now()
	res, err := s.db.ExecContext(ctx, `UPDATE sessions SET expires_at = ? WHERE id = ? AND expires_at > ?`,
		now.Add(ttl).Unix(), id, now.Unix())
	if err != nil {
		return fmt.Errorf("failed to extend session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to extend session: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// PurgeExpired removes expired rows and returns how many were deleted.
func (s *SQLiteStore) PurgeExpired(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "SQLiteStore.PurgeExpired")
	defer span.End()

	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= ?`, s.now().Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to purge sessions: %w", err)
	}
	return res.RowsAffected()
}

// RunPurger calls PurgeExpired every interval until ctx is done.
func (s *SQLiteStore) RunPurger(ctx context.Context, interval time.Duration, onErr func(error)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := s.PurgeExpired(ctx); err != nil && onErr != nil {
				onErr(err)
			}
		case <-ctx.Done():
			return
		}
	}
}
