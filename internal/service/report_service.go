package service

import (
	"math"
	"pretexta_backend/internal/model"
	"strconv"
	"time"
)

// ActionComplied marks an event where the participant did what the attacker
// asked.
const ActionComplied = "complied"

type Score struct {
	Total     float64                `json:"total"`
	Breakdown map[string]interface{} `json:"breakdown"`
}

// CalculateSusceptibilityScore rates resistance from 0 to 100. Higher means
// fewer complied actions.
func CalculateSusceptibilityScore(events []model.Event) Score {
	if len(events) == 0 {
		return Score{Total: 0, Breakdown: map[string]interface{}{}}
	}

	complied := 0
	for _, e := range events {
		if action, _ := e["action"].(string); action == ActionComplied {
			complied++
		}
	}

	total := len(events)
	rate := float64(complied) / float64(total) * 100

	return Score{
		Total: round2(math.Max(0, 100-rate)),
		Breakdown: map[string]interface{}{
			"compliance_rate": round2(rate),
			"total_events":    total,
		},
	}
}

// round2 rounds the exact binary value to two decimals, ties to even.
func round2(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return r
}

type Report struct {
	SimulationID    string        `json:"simulation_id"`
	Score           Score         `json:"score"`
	Events          []model.Event `json:"events"`
	StartedAt       time.Time     `json:"started_at"`
	CompletedAt     *time.Time    `json:"completed_at"`
	ParticipantName *string       `json:"participant_name"`
}

type ReportService struct {
	Simulations *SimulationService
}

func NewReportService(simulations *SimulationService) *ReportService {
	return &ReportService{Simulations: simulations}
}

func (s *ReportService) JSONReport(simulationID string) (*Report, error) {
	sim, err := s.Simulations.Get(simulationID)
	if err != nil {
		return nil, err
	}

	events := []model.Event(sim.Events)
	if events == nil {
		events = []model.Event{}
	}

	return &Report{
		SimulationID:    simulationID,
		Score:           CalculateSusceptibilityScore(events),
		Events:          events,
		StartedAt:       sim.StartedAt,
		CompletedAt:     sim.CompletedAt,
		ParticipantName: sim.ParticipantName,
	}, nil
}
