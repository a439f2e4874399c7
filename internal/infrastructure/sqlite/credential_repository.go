package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/martijn/trainhub/internal/core/repository"
)

type credentialRepository struct {
	db *DB
}

func NewCredentialRepository(db *DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

// Get returns false for missing keys and on read errors.
func (r *credentialRepository) Get(key string) (string, bool) {
	var value string
	err := r.db.Get(&value, `SELECT value FROM credential WHERE key = ?`, key)
	if err != nil {
		return "", false
	}
	return value, true
}

func (r *credentialRepository) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO credential (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := r.db.ExecContext(ctx, query, key, value, time.Now()); err != nil {
		return fmt.Errorf("failed to store credential: %w", err)
	}
	return nil
}

func (r *credentialRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM credential WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	return nil
}
