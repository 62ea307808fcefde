package repositories

import (
	"context"

	"refurbmart/internal/models/db_models"

	"gorm.io/gorm"
)

type SettingsRepositoryInterface interface {
	Get(ctx context.Context) (*db_models.StoreSettings, error)
	Update(ctx context.Context, settings *db_models.StoreSettings) error
}

func NewSettingsRepository(db *gorm.DB) SettingsRepositoryInterface {
	return &settingsRepository{db: db}
}

type settingsRepository struct {
	db *gorm.DB
}

// Get returns the singleton settings row, creating the defaults row on first
// access.
func (r *settingsRepository) Get(ctx context.Context) (*db_models.StoreSettings, error) {
	var settings db_models.StoreSettings
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		FirstOrCreate(&settings, db_models.StoreSettings{}).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Update(ctx context.Context, settings *db_models.StoreSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
