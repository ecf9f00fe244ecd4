package service

import (
	"context"
	"errors"
	"pretexta_backend/internal/llm"
	"pretexta_backend/internal/model"
	"sort"
	"sync"

	"gorm.io/gorm"
)

type fakeUserStore struct {
	users map[string]*model.User
	// lookupErr, when set, fails every FindByID.
	lookupErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*model.User{}}
}

func (f *fakeUserStore) Create(user *model.User) error {
	if user.ID == "" {
		user.ID = model.GenerateUUID()
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) FindByID(id string) (*model.User, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserStore) FindByUsername(username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeSimulationStore struct {
	sims    map[string]*model.Simulation
	updates map[string]map[string]interface{}
}

func newFakeSimulationStore() *fakeSimulationStore {
	return &fakeSimulationStore{
		sims:    map[string]*model.Simulation{},
		updates: map[string]map[string]interface{}{},
	}
}

func (f *fakeSimulationStore) Create(sim *model.Simulation) error {
	f.sims[sim.ID] = sim
	return nil
}

func (f *fakeSimulationStore) FindRecent(limit int) ([]model.Simulation, error) {
	var out []model.Simulation
	for _, s := range f.sims {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt.After(out[j].StartedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeSimulationStore) FindByID(id string) (*model.Simulation, error) {
	if s, ok := f.sims[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSimulationStore) Update(id string, updates map[string]interface{}) error {
	if _, ok := f.sims[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.updates[id] = updates
	return nil
}

func (f *fakeSimulationStore) Delete(id string) error {
	if _, ok := f.sims[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.sims, id)
	return nil
}

type fakeLLMConfigStore struct {
	configs map[string]model.LLMConfig
	deleted []string
}

func newFakeLLMConfigStore(configs ...model.LLMConfig) *fakeLLMConfigStore {
	f := &fakeLLMConfigStore{configs: map[string]model.LLMConfig{}}
	for _, c := range configs {
		f.configs[c.Provider] = c
	}
	return f
}

func (f *fakeLLMConfigStore) FindAll(limit int) ([]model.LLMConfig, error) {
	var out []model.LLMConfig
	for _, c := range f.configs {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Provider < out[j].Provider })
	return out, nil
}

func (f *fakeLLMConfigStore) FindEnabled(provider string) (*model.LLMConfig, error) {
	var best *model.LLMConfig
	for _, c := range f.configs {
		c := c
		if !c.Enabled || (provider != "" && c.Provider != provider) {
			continue
		}
		if best == nil || c.UpdatedAt.After(best.UpdatedAt) {
			best = &c
		}
	}
	if best == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return best, nil
}

func (f *fakeLLMConfigStore) Upsert(cfg *model.LLMConfig) error {
	f.configs[cfg.Provider] = *cfg
	return nil
}

func (f *fakeLLMConfigStore) DeleteByProvider(provider string) error {
	delete(f.configs, provider)
	f.deleted = append(f.deleted, provider)
	return nil
}

type fakeSettingsStore struct {
	settings *model.Settings
	applied  map[string]interface{}
}

func (f *fakeSettingsStore) Get() (*model.Settings, error) {
	if f.settings == nil {
		f.settings = model.DefaultSettings()
	}
	return f.settings, nil
}

func (f *fakeSettingsStore) Update(updates map[string]interface{}) error {
	f.applied = updates
	return nil
}

var errDuplicateID = errors.New("Error 1062 (23000): Duplicate entry for key 'PRIMARY'")

type fakeChallengeStore struct {
	items []model.Challenge
}

func (f *fakeChallengeStore) FindAll(limit int) ([]model.Challenge, error) { return f.items, nil }

func (f *fakeChallengeStore) FindByID(id string) (*model.Challenge, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeChallengeStore) Create(c *model.Challenge) error {
	if c.ID == "" {
		c.ID = model.GenerateUUID()
	}
	if _, err := f.FindByID(c.ID); err == nil {
		return errDuplicateID
	}
	f.items = append(f.items, *c)
	return nil
}

type fakeQuizStore struct {
	items []model.Quiz
}

func (f *fakeQuizStore) FindAll(limit int) ([]model.Quiz, error) { return f.items, nil }

func (f *fakeQuizStore) FindByID(id string) (*model.Quiz, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeQuizStore) Create(q *model.Quiz) error {
	if q.ID == "" {
		q.ID = model.GenerateUUID()
	}
	if _, err := f.FindByID(q.ID); err == nil {
		return errDuplicateID
	}
	f.items = append(f.items, *q)
	return nil
}

// scriptedClient answers per model name; missing models fail.
type scriptedClient struct {
	mu       sync.Mutex
	replies  map[string]string
	failures map[string]error
	calls    []llm.Request
}

func (c *scriptedClient) Complete(ctx context.Context, req llm.Request) (string, error) {
	c.mu.Lock()
	c.calls = append(c.calls, req)
	c.mu.Unlock()

	if err, ok := c.failures[req.Model]; ok {
		return "", err
	}
	if reply, ok := c.replies[req.Model]; ok {
		return reply, nil
	}
	return "", context.DeadlineExceeded
}

func (c *scriptedClient) models() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.calls))
	for _, r := range c.calls {
		out = append(out, r.Model)
	}
	return out
}
