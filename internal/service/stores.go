package service

import "pretexta_backend/internal/model"

// The service layer depends on these narrow views of the repositories.

type UserStore interface {
	Create(user *model.User) error
	FindByID(id string) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
}

type ChallengeStore interface {
	FindAll(limit int) ([]model.Challenge, error)
	FindByID(id string) (*model.Challenge, error)
	Create(challenge *model.Challenge) error
}

type QuizStore interface {
	FindAll(limit int) ([]model.Quiz, error)
	FindByID(id string) (*model.Quiz, error)
	Create(quiz *model.Quiz) error
}

type SimulationStore interface {
	Create(sim *model.Simulation) error
	FindRecent(limit int) ([]model.Simulation, error)
	FindByID(id string) (*model.Simulation, error)
	Update(id string, updates map[string]interface{}) error
	Delete(id string) error
}

type LLMConfigStore interface {
	FindAll(limit int) ([]model.LLMConfig, error)
	FindEnabled(provider string) (*model.LLMConfig, error)
	Upsert(cfg *model.LLMConfig) error
	DeleteByProvider(provider string) error
}

type SettingsStore interface {
	Get() (*model.Settings, error)
	Update(updates map[string]interface{}) error
}
