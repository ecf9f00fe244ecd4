package service

import (
	"pretexta_backend/internal/model"
	"testing"
)

func events(actions ...string) []model.Event {
	out := make([]model.Event, 0, len(actions))
	for _, a := range actions {
		out = append(out, model.Event{"action": a})
	}
	return out
}

func TestCalculateSusceptibilityScore(t *testing.T) {
	tests := []struct {
		name       string
		events     []model.Event
		total      float64
		compliance float64
	}{
		{"all resisted", events("refused", "reported"), 100, 0},
		{"all complied", events("complied", "complied"), 0, 100},
		{"one of three", events("complied", "refused", "ignored"), 66.67, 33.33},
		{"missing action", []model.Event{{"note": "x"}, {"action": "complied"}}, 50, 50},
		{"three of thirty-two", complianceEvents(3, 32), 90.62, 9.38},
		{"one of thirty-two", complianceEvents(1, 32), 96.88, 3.12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := CalculateSusceptibilityScore(tt.events)
			if score.Total != tt.total {
				t.Fatalf("total = %v, want %v", score.Total, tt.total)
			}
			if score.Breakdown["compliance_rate"] != tt.compliance {
				t.Fatalf("compliance_rate = %v, want %v", score.Breakdown["compliance_rate"], tt.compliance)
			}
			if score.Breakdown["total_events"] != len(tt.events) {
				t.Fatalf("total_events = %v, want %d", score.Breakdown["total_events"], len(tt.events))
			}
		})
	}
}

func TestCalculateSusceptibilityScoreEmpty(t *testing.T) {
	score := CalculateSusceptibilityScore(nil)
	if score.Total != 0 || len(score.Breakdown) != 0 || score.Breakdown == nil {
		t.Fatalf("unexpected empty score: %+v", score)
	}
}

func TestJSONReport(t *testing.T) {
	sims := NewSimulationService(newFakeSimulationStore())
	name := "alice"
	sim := &model.Simulation{SimulationType: "challenge", Status: model.SimulationCompleted, ParticipantName: &name}
	sim.Events = events("complied", "refused")
	if err := sims.Start(sim); err != nil {
		t.Fatalf("start: %v", err)
	}

	report, err := NewReportService(sims).JSONReport(sim.ID)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if report.SimulationID != sim.ID || report.Score.Total != 50 || len(report.Events) != 2 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if report.ParticipantName == nil || *report.ParticipantName != "alice" {
		t.Fatalf("participant_name not carried over")
	}
}

// complianceEvents builds total events of which the first complied ones complied.
func complianceEvents(complied, total int) []model.Event {
	out := make([]model.Event, 0, total)
	for i := 0; i < total; i++ {
		action := "refused"
		if i < complied {
			action = "complied"
		}
		out = append(out, model.Event{"action": action})
	}
	return out
}
