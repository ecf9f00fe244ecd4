package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	SimulationRunning   = "running"
	SimulationCompleted = "completed"
	SimulationPaused    = "paused"
)

// Event is one logged participant action. Only "action" is interpreted.
type Event = map[string]interface{}

// Simulation records one run of a challenge, quiz or AI battle. Events keep
// insertion order.
type Simulation struct {
	ID              string                     `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ChallengeID     *string                    `gorm:"size:36;index" json:"challenge_id"`
	QuizID          *string                    `gorm:"size:36;index" json:"quiz_id"`
	SimulationType  string                     `gorm:"size:32" json:"simulation_type"`
	Status          string                     `gorm:"size:16;index" json:"status"`
	Events          datatypes.JSONSlice[Event] `json:"events"`
	Score           *float64                   `json:"score"`
	StartedAt       time.Time                  `gorm:"index" json:"started_at"`
	CompletedAt     *time.Time                 `json:"completed_at"`
	ParticipantName *string                    `gorm:"size:255" json:"participant_name"`
	Title           *string                    `gorm:"size:255" json:"title"`

	Type           *string           `gorm:"size:32" json:"type"`
	ChallengeType  *string           `gorm:"size:32" json:"challenge_type"`
	Category       *string           `gorm:"size:64" json:"category"`
	Difficulty     *string           `gorm:"size:32" json:"difficulty"`
	TotalQuestions *int              `json:"total_questions"`
	CorrectAnswers *int              `json:"correct_answers"`
	Answers        datatypes.JSONMap `json:"answers"`
	ChallengeData  datatypes.JSONMap `json:"challenge_data"`
}

func (Simulation) TableName() string {
	return "simulations"
}
