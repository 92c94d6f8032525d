package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SlotRepo is durable key-value storage for small JSON payloads. Each write
// replaces the whole value under its key, so readers never observe a partial
// update.
type SlotRepo interface {
	// Get returns the value stored under key. The bool reports whether the
	// slot exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key, value string) error

	// Delete removes the slot for key. Deleting a missing slot is not an
	// error.
	Delete(ctx context.Context, key string) error
}

type slotRepo struct {
	db *sql.DB
}

func (r *slotRepo) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM slots WHERE key = ?`, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get slot %q: %w", key, err)
	}
	return value, true, nil
}

func (r *slotRepo) Put(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("put slot %q: %w", key, err)
	}
	return nil
}

func (r *slotRepo) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM slots WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("delete slot %q: %w", key, err)
	}
	return nil
}
