package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ISettingsRepository defines the interface for platform settings operations
type ISettingsRepository interface {
	GetAll(ctx context.Context) (map[string]string, error)
	UpsertTx(ctx context.Context, tx pgx.Tx, key, value string, updatedBy int64) error
}

// SettingsRepository handles database operations for platform settings
type SettingsRepository struct {
	db *pgxpool.Pool
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetAll retrieves every platform setting as a key/value map
func (r *SettingsRepository) GetAll(ctx context.Context) (map[string]string, error) {
	query := `SELECT setting_key, setting_value FROM platform_settings`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settings := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		settings[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return settings, nil
}

// UpsertTx inserts or updates one setting within a transaction, so a settings
// save applies all pairs or none.
func (r *SettingsRepository) UpsertTx(ctx context.Context, tx pgx.Tx, key, value string, updatedBy int64) error {
	query := `
		INSERT INTO platform_settings (setting_key, setting_value, updated_by, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (setting_key)
		DO UPDATE SET setting_value = EXCLUDED.setting_value,
		              updated_by = EXCLUDED.updated_by,
		              updated_at = NOW()
	`

	_, err := tx.Exec(ctx, query, key, value, updatedBy)
	return err
}
