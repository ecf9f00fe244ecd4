package repository

import (
	"pretexta_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LLMConfigRepository struct {
	DB *gorm.DB
}

func NewLLMConfigRepository(db *gorm.DB) *LLMConfigRepository {
	return &LLMConfigRepository{DB: db}
}

func (r *LLMConfigRepository) FindAll(limit int) ([]model.LLMConfig, error) {
	var configs []model.LLMConfig
	err := r.DB.Order("provider asc").Limit(limit).Find(&configs).Error
	return configs, err
}

// FindEnabled returns the enabled config for provider, or the most recently
// updated enabled config when provider is empty.
func (r *LLMConfigRepository) FindEnabled(provider string) (*model.LLMConfig, error) {
	var cfg model.LLMConfig
	q := r.DB.Where("enabled = ?", true)
	if provider != "" {
		q = q.Where("provider = ?", provider)
	}
	if err := q.Order("updated_at desc").First(&cfg).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Upsert stores cfg keyed by provider.
func (r *LLMConfigRepository) Upsert(cfg *model.LLMConfig) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "provider"}},
		DoUpdates: clause.AssignmentColumns([]string{"api_key", "model_name", "enabled", "rate_limit", "updated_at"}),
	}).Create(cfg).Error
}

func (r *LLMConfigRepository) DeleteByProvider(provider string) error {
	return r.DB.Where("provider = ?", provider).Delete(&model.LLMConfig{}).Error
}
