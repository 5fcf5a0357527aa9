package postgresql

import (
	"context"
	"fmt"

	"github.com/crewpay/crewpay-backend-go/internal/domain/setting"
	"github.com/crewpay/crewpay-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type settingRepository struct {
	db *database.DB
}

func NewSettingRepository(db *database.DB) setting.SettingRepository {
	return &settingRepository{db: db}
}

// GetByKeys implements setting.SettingRepository.
func (r *settingRepository) GetByKeys(ctx context.Context, keys []string) ([]setting.AppSetting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, key, value, type, updated_at
		FROM app_settings
		WHERE key = ANY($1)
	`

	rows, err := q.Query(ctx, query, keys)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	defer rows.Close()

	var settings []setting.AppSetting
	for rows.Next() {
		var s setting.AppSetting
		if err := rows.Scan(&s.ID, &s.Key, &s.Value, &s.Type, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		settings = append(settings, s)
	}

	return settings, rows.Err()
}

// Upsert implements setting.SettingRepository.
func (r *settingRepository) Upsert(ctx context.Context, key, value, valueType string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO app_settings (id, key, value, type)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, type = EXCLUDED.type, updated_at = NOW()
	`

	_, err := q.Exec(ctx, query, uuid.NewString(), key, value, valueType)
	if err != nil {
		return fmt.Errorf("failed to upsert setting %s: %w", key, err)
	}

	return nil
}
