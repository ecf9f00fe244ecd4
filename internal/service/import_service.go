package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"pretexta_backend/internal/model"
	"pretexta_backend/internal/util"
	"time"

	"github.com/gin-gonic/gin/binding"
	"gopkg.in/yaml.v3"
)

const (
	ImportTypeChallenge = "challenge"
	ImportTypeQuiz      = "quiz"
)

// ImportRequest carries either an already decoded document in Data or raw
// YAML in Content.
type ImportRequest struct {
	Type    string                 `json:"type"`
	Data    map[string]interface{} `json:"data"`
	Content string                 `json:"content"`
}

type ImportResult struct {
	Message string `json:"message"`
	ID      string `json:"id"`
	Type    string `json:"-"`
}

type ImportOptions struct {
	// FreshIdentity discards any id and created_at carried by the document.
	FreshIdentity bool
}

type ImportService struct {
	Content *ContentService
}

func NewImportService(content *ContentService) *ImportService {
	return &ImportService{Content: content}
}

func (s *ImportService) Import(req ImportRequest, opts ImportOptions) (*ImportResult, error) {
	kind, data, err := resolveImportDocument(req)
	if err != nil {
		return nil, &util.ImportError{Err: err}
	}

	switch kind {
	case ImportTypeChallenge:
		var challenge model.Challenge
		if err := decodeDocument(data, &challenge); err != nil {
			return nil, &util.ImportError{Err: err}
		}
		if opts.FreshIdentity {
			challenge.Document = model.Document{}
		}
		if err := s.Content.CreateChallenge(&challenge); err != nil {
			return nil, &util.ImportError{Err: err}
		}
		return &ImportResult{Message: "Challenge imported", ID: challenge.ID, Type: kind}, nil

	case ImportTypeQuiz:
		var quiz model.Quiz
		if err := decodeDocument(data, &quiz); err != nil {
			return nil, &util.ImportError{Err: err}
		}
		if opts.FreshIdentity {
			quiz.Document = model.Document{}
		}
		if err := s.Content.CreateQuiz(&quiz); err != nil {
			return nil, &util.ImportError{Err: err}
		}
		return &ImportResult{Message: "Quiz imported", ID: quiz.ID, Type: kind}, nil

	default:
		return nil, &util.ImportError{Err: fmt.Errorf("unknown YAML type %q", kind)}
	}
}

// ParseYAMLDocument decodes a YAML file into an import request. The file may
// wrap the document as {type, data} or be the bare document with a type key.
func ParseYAMLDocument(raw []byte) (ImportRequest, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return ImportRequest{}, err
	}
	if doc == nil {
		return ImportRequest{}, errors.New("empty document")
	}

	req := ImportRequest{}
	if t, ok := doc["type"].(string); ok {
		req.Type = t
	}
	if data, ok := doc["data"].(map[string]interface{}); ok {
		req.Data = data
		return req, nil
	}

	delete(doc, "type")
	req.Data = doc
	return req, nil
}

func resolveImportDocument(req ImportRequest) (string, map[string]interface{}, error) {
	if req.Content != "" {
		parsed, err := ParseYAMLDocument([]byte(req.Content))
		if err != nil {
			return "", nil, err
		}
		if req.Type == "" {
			req.Type = parsed.Type
		}
		req.Data = parsed.Data
	}
	if req.Data == nil {
		return "", nil, errors.New("missing document data")
	}
	return req.Type, req.Data, nil
}

// decodeDocument maps a generic document onto dst through its JSON tags and
// runs the binding validation rules.
func decodeDocument(data map[string]interface{}, dst interface{}) error {
	raw, err := json.Marshal(normalizeYAML(data))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return err
	}
	return binding.Validator.ValidateStruct(dst)
}

// normalizeYAML turns YAML specific values into JSON friendly ones.
func normalizeYAML(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			out[k] = normalizeYAML(val)
		}
		return out
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalizeYAML(val)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, val := range t {
			out[i] = normalizeYAML(val)
		}
		return out
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano)
	default:
		return v
	}
}
