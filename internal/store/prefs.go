package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Preference keys. The session gate owns their meaning; the store just
// persists them.
const (
	PrefLoggedIn  = "logged_in"
	PrefUserEmail = "user_email"
)

// GetPref returns the stored value for key, with ok=false when unset.
func (s *DB) GetPref(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM preferences WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading preference %q: %w", key, err)
	}
	return value, true, nil
}

// SetPref upserts a single preference entry.
func (s *DB) SetPref(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO preferences (key, value) VALUES (?, ?)", key, value)
	if err != nil {
		return fmt.Errorf("writing preference %q: %w", key, err)
	}
	return nil
}

// ClearUserData removes the login flag and the stored email in one
// transaction, so logout never leaves a half-cleared session behind.
func (s *DB) ClearUserData(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("clearing user data: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, key := range []string{PrefLoggedIn, PrefUserEmail} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM preferences WHERE key = ?", key); err != nil {
			return fmt.Errorf("clearing preference %q: %w", key, err)
		}
	}
	return tx.Commit()
}
