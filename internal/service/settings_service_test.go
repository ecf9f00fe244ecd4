package service

import (
	"errors"
	"pretexta_backend/internal/util"
	"testing"
)

func TestSettingsDefaults(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsStore{})
	s, err := svc.Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if s.ID != "settings" || s.Language != "en" || s.Theme != "dark" || s.FirstRunCompleted || s.LLMEnabled {
		t.Fatalf("unexpected defaults: %+v", s)
	}
}

func TestSettingsUpdateFiltersKeys(t *testing.T) {
	store := &fakeSettingsStore{}
	svc := NewSettingsService(store)

	err := svc.Update(map[string]interface{}{
		"language":            "id",
		"first_run_completed": true,
		"id":                  "hijack",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(store.applied) != 2 || store.applied["language"] != "id" || store.applied["first_run_completed"] != true {
		t.Fatalf("unexpected applied updates: %#v", store.applied)
	}
}

func TestSettingsUpdateRejectsWrongType(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsStore{})
	if err := svc.Update(map[string]interface{}{"llm_enabled": "yes"}); !errors.Is(err, util.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
