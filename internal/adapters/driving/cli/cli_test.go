package cli

import (
	"context"
	"fmt"

	"github.com/gregdex/gregdex/internal/core/domain"
)

// stubConfig is an in-memory driven.ConfigStore for command tests.
type stubConfig struct {
	values map[string]any
}

func (s *stubConfig) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *stubConfig) GetString(key string) string {
	v, _ := s.values[key].(string)
	return v
}

func (s *stubConfig) GetInt(key string) int {
	v, _ := s.values[key].(int)
	return v
}

func (s *stubConfig) Set(key string, value any) error {
	s.values[key] = value
	return nil
}

func (s *stubConfig) Load() error { return nil }

func (s *stubConfig) Path() string { return "/tmp/config.toml" }

// stubQuery is a canned driving.QueryService.
type stubQuery struct {
	results  []domain.SearchResult
	detail   *domain.ItemDetail
	fluid    *domain.Fluid
	fluids   []domain.Fluid
	machines []domain.Machine
}

func (s *stubQuery) Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error) {
	if limit > 0 && len(s.results) > limit {
		return s.results[:limit], nil
	}
	return s.results, nil
}

func (s *stubQuery) Item(ctx context.Context, token string) (*domain.ItemDetail, error) {
	if s.detail == nil {
		return nil, domain.ErrNotFound
	}
	return s.detail, nil
}

func (s *stubQuery) Fluid(ctx context.Context, token string) (*domain.Fluid, error) {
	if s.fluid == nil {
		return nil, domain.ErrNotFound
	}
	return s.fluid, nil
}

func (s *stubQuery) Fluids(ctx context.Context) ([]domain.Fluid, error) {
	return s.fluids, nil
}

func (s *stubQuery) Machines(ctx context.Context) ([]domain.Machine, error) {
	return s.machines, nil
}

func (s *stubQuery) Machine(ctx context.Context, machineID string) (*domain.Machine, error) {
	for i := range s.machines {
		if s.machines[i].ID == machineID {
			return &s.machines[i], nil
		}
	}
	return nil, fmt.Errorf("machine %s: %w", machineID, domain.ErrNotFound)
}

func (s *stubQuery) RecipeChunk(ctx context.Context, machineID string, chunk int) ([]domain.Recipe, error) {
	return nil, nil
}

// stubPipeline is a canned driving.PipelineService.
type stubPipeline struct {
	manifest *domain.Manifest
	err      error
}

func (s *stubPipeline) Run(ctx context.Context) (*domain.Manifest, error) {
	return s.manifest, s.err
}

// setupTestServices injects stubs into the package-level service
// slots and returns a cleanup restoring them.
func setupTestServices(query *stubQuery, pipeline *stubPipeline) func() {
	configStore = &stubConfig{values: map[string]any{}}
	queryService = query
	pipelineService = pipeline
	return func() {
		configStore = nil
		queryService = nil
		pipelineService = nil
	}
}
