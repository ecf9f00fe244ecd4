package model

import "time"

// MaskedAPIKey replaces every stored credential in list responses.
const MaskedAPIKey = "***"

type LLMConfig struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Provider  string    `gorm:"size:32;uniqueIndex;not null" json:"provider" binding:"required"`
	APIKey    string    `gorm:"type:text" json:"api_key"`
	ModelName *string   `gorm:"size:128" json:"model_name"`
	Enabled   bool      `gorm:"index" json:"enabled"`
	RateLimit int       `gorm:"default:100" json:"rate_limit"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (LLMConfig) TableName() string {
	return "llm_configs"
}
