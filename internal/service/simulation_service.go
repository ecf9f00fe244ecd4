package service

import (
	"errors"
	"fmt"
	"math"
	"pretexta_backend/internal/model"
	"pretexta_backend/internal/util"
	"pretexta_backend/pkg/logger"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const simulationListLimit = 100

type SimulationService struct {
	Sims SimulationStore
	// Now is replaceable in tests.
	Now func() time.Time
}

func NewSimulationService(sims SimulationStore) *SimulationService {
	return &SimulationService{
		Sims: sims,
		Now:  func() time.Time { return time.Now().UTC() },
	}
}

func validStatus(status string) bool {
	switch status {
	case model.SimulationRunning, model.SimulationCompleted, model.SimulationPaused:
		return true
	}
	return false
}

// Start records a new simulation run.
func (s *SimulationService) Start(sim *model.Simulation) error {
	if sim.SimulationType == "" && sim.Type != nil {
		sim.SimulationType = *sim.Type
	}
	if sim.SimulationType == "" {
		return &util.ValidationError{Field: "simulation_type", Message: "is required"}
	}
	if !validStatus(sim.Status) {
		return &util.ValidationError{Field: "status", Message: fmt.Sprintf("must be one of %s, %s, %s",
			model.SimulationRunning, model.SimulationCompleted, model.SimulationPaused)}
	}

	if sim.ID == "" {
		sim.ID = model.GenerateUUID()
	}
	if sim.Events == nil {
		sim.Events = datatypes.JSONSlice[model.Event]{}
	}
	if sim.StartedAt.IsZero() {
		sim.StartedAt = s.Now()
	}

	return s.Sims.Create(sim)
}

func (s *SimulationService) List() ([]model.Simulation, error) {
	sims, err := s.Sims.FindRecent(simulationListLimit)
	if err != nil {
		return nil, err
	}
	if sims == nil {
		sims = []model.Simulation{}
	}
	return sims, nil
}

func (s *SimulationService) Get(id string) (*model.Simulation, error) {
	sim, err := s.Sims.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSimulationNotFound
	}
	return sim, err
}

// Patch applies a partial update. Keys are simulation field names; any
// non-empty completed_at is replaced by the server clock.
func (s *SimulationService) Patch(id string, patch map[string]interface{}) error {
	updates := make(map[string]interface{}, len(patch))

	for key, raw := range patch {
		if key == "completed_at" {
			if isEmptyValue(raw) {
				updates["completed_at"] = nil
			} else {
				updates["completed_at"] = s.Now()
			}
			continue
		}

		field, ok := simulationPatchFields[key]
		if !ok {
			logger.Log.Debug("ignoring unknown simulation field", zap.String("field", key))
			continue
		}
		value, err := field.convert(raw)
		if err != nil {
			return &util.ValidationError{Field: key, Message: err.Error()}
		}
		updates[field.column] = value
	}

	err := s.Sims.Update(id, updates)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrSimulationNotFound
	}
	return err
}

func (s *SimulationService) Delete(id string) error {
	err := s.Sims.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrSimulationNotFound
	}
	return err
}

type patchField struct {
	column  string
	convert func(raw interface{}) (interface{}, error)
}

var simulationPatchFields = map[string]patchField{
	"challenge_id":     {"challenge_id", optionalString},
	"quiz_id":          {"quiz_id", optionalString},
	"simulation_type":  {"simulation_type", requiredString},
	"status":           {"status", statusValue},
	"events":           {"events", eventsValue},
	"score":            {"score", optionalFloat},
	"participant_name": {"participant_name", optionalString},
	"title":            {"title", optionalString},
	"type":             {"type", optionalString},
	"challenge_type":   {"challenge_type", optionalString},
	"category":         {"category", optionalString},
	"difficulty":       {"difficulty", optionalString},
	"total_questions":  {"total_questions", optionalInt},
	"correct_answers":  {"correct_answers", optionalInt},
	"answers":          {"answers", optionalMap},
	"challenge_data":   {"challenge_data", optionalMap},
}

func isEmptyValue(raw interface{}) bool {
	switch v := raw.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	}
	return false
}

func optionalString(raw interface{}) (interface{}, error) {
	if raw == nil {
		return nil, nil
	}
	s, ok := raw.(string)
	if !ok {
		return nil, errors.New("must be a string")
	}
	return s, nil
}

func requiredString(raw interface{}) (interface{}, error) {
	s, ok := raw.(string)
	if !ok || s == "" {
		return nil, errors.New("must be a non-empty string")
	}
	return s, nil
}

func statusValue(raw interface{}) (interface{}, error) {
	s, ok := raw.(string)
	if !ok || !validStatus(s) {
		return nil, errors.New("must be one of running, completed, paused")
	}
	return s, nil
}

func optionalFloat(raw interface{}) (interface{}, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	}
	return nil, errors.New("must be a number")
}

func optionalInt(raw interface{}) (interface{}, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case int:
		return v, nil
	case float64:
		if v != math.Trunc(v) {
			return nil, errors.New("must be an integer")
		}
		return int(v), nil
	}
	return nil, errors.New("must be an integer")
}

func optionalMap(raw interface{}) (interface{}, error) {
	if raw == nil {
		return nil, nil
	}
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil, errors.New("must be an object")
	}
	return datatypes.JSONMap(m), nil
}

func eventsValue(raw interface{}) (interface{}, error) {
	if raw == nil {
		return datatypes.JSONSlice[model.Event]{}, nil
	}
	list, ok := raw.([]interface{})
	if !ok {
		return nil, errors.New("must be a list of objects")
	}
	events := make(datatypes.JSONSlice[model.Event], 0, len(list))
	for _, item := range list {
		event, ok := item.(map[string]interface{})
		if !ok {
			return nil, errors.New("must be a list of objects")
		}
		events = append(events, event)
	}
	return events, nil
}
