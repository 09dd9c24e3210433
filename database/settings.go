package database

import (
	"context"

	"netson-backend/models"
)

const settingCols = `id, key, value, COALESCE(description, ''), is_active, created_at, updated_at`

func scanSetting(r rowScanner) (*models.SiteSetting, error) {
	var s models.SiteSetting
	err := r.Scan(&s.Id, &s.Key, &s.Value, &s.Description, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func ListSettings(ctx context.Context, activeOnly bool) ([]*models.SiteSetting, error) {
	query := `SELECT ` + settingCols + ` FROM site_settings ORDER BY key ASC`
	if activeOnly {
		query = `SELECT ` + settingCols + ` FROM site_settings WHERE is_active = true ORDER BY key ASC`
	}
	rows, err := Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settings := []*models.SiteSetting{}
	for rows.Next() {
		s, err := scanSetting(rows)
		if err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

// UpsertSetting writes a value under its key, creating the row on first use.
func UpsertSetting(ctx context.Context, key string, in models.SiteSettingUpsert) (*models.SiteSetting, error) {
	row := Pool.QueryRow(ctx, `
		INSERT INTO site_settings (key, value, description)
		VALUES ($1, $2, $3)
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value,
			description = COALESCE(NULLIF(EXCLUDED.description, ''), site_settings.description),
			updated_at = CURRENT_TIMESTAMP
		RETURNING `+settingCols,
		key, in.Value, in.Description)
	return scanSetting(row)
}
