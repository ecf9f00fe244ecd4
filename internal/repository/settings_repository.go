package repository

import (
	"pretexta_backend/internal/model"

	"gorm.io/gorm"
)

type SettingsRepository struct {
	DB *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

// Get returns the singleton settings row, creating it with defaults first.
func (r *SettingsRepository) Get() (*model.Settings, error) {
	var settings model.Settings
	err := r.DB.Where(model.Settings{ID: model.SettingsID}).
		Attrs(model.DefaultSettings()).
		FirstOrCreate(&settings).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *SettingsRepository) Update(updates map[string]interface{}) error {
	if _, err := r.Get(); err != nil {
		return err
	}
	if len(updates) == 0 {
		return nil
	}
	return r.DB.Model(&model.Settings{ID: model.SettingsID}).Updates(updates).Error
}
