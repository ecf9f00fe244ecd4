package service

import (
	"fmt"
	"pretexta_backend/internal/model"
	"pretexta_backend/internal/util"
	"pretexta_backend/pkg/logger"

	"go.uber.org/zap"
)

type SettingsService struct {
	Settings SettingsStore
}

func NewSettingsService(settings SettingsStore) *SettingsService {
	return &SettingsService{Settings: settings}
}

func (s *SettingsService) Get() (*model.Settings, error) {
	return s.Settings.Get()
}

// settingKinds lists the writable settings and the JSON kind each accepts.
var settingKinds = map[string]string{
	"language":            "string",
	"theme":               "string",
	"first_run_completed": "bool",
	"llm_enabled":         "bool",
	"reduce_motion":       "bool",
}

// Update merges the given keys into the singleton settings document.
func (s *SettingsService) Update(updates map[string]interface{}) error {
	columns := make(map[string]interface{}, len(updates))
	for key, value := range updates {
		kind, ok := settingKinds[key]
		if !ok {
			logger.Log.Debug("ignoring unknown setting", zap.String("key", key))
			continue
		}

		switch kind {
		case "string":
			v, ok := value.(string)
			if !ok {
				return &util.ValidationError{Field: key, Message: "must be a string"}
			}
			columns[key] = v
		case "bool":
			v, ok := value.(bool)
			if !ok {
				return &util.ValidationError{Field: key, Message: "must be a boolean"}
			}
			columns[key] = v
		default:
			return fmt.Errorf("unhandled setting kind %q", kind)
		}
	}
	return s.Settings.Update(columns)
}
