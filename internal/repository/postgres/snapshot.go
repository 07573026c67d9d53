package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/avc/ecocart-rewards/internal/domain"
)

// SnapshotRepository реализует key-value хранилище снимков состояния
type SnapshotRepository struct {
	db DBTX
}

// NewSnapshotRepository создает новый SnapshotRepository
func NewSnapshotRepository(db DBTX) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Save сохраняет снимок по ключу, перезаписывая предыдущий
func (r *SnapshotRepository) Save(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO snapshots (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`

	if _, err := r.db.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to save snapshot %q: %w", key, err)
	}
	return nil
}

// Load читает снимок по ключу
func (r *SnapshotRepository) Load(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM snapshots WHERE key = $1`

	var value []byte
	err := r.db.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to load snapshot %q: %w", key, err)
	}
	return value, nil
}
