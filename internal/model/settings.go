package model

const SettingsID = "settings"

type Settings struct {
	ID                string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Language          string `gorm:"size:8;default:en" json:"language"`
	Theme             string `gorm:"size:16;default:dark" json:"theme"`
	FirstRunCompleted bool   `json:"first_run_completed"`
	LLMEnabled        bool   `gorm:"column:llm_enabled" json:"llm_enabled"`
	ReduceMotion      bool   `json:"reduce_motion"`
}

func (Settings) TableName() string {
	return "settings"
}

func DefaultSettings() *Settings {
	return &Settings{
		ID:       SettingsID,
		Language: "en",
		Theme:    "dark",
	}
}
