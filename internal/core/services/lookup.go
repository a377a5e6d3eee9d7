package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/gregdex/gregdex/internal/core/domain"
	"github.com/gregdex/gregdex/internal/logger"
)

// Item resolves an item by an incoming token, which may be either the
// encoded id or the readable hyphenated form, and hydrates its first
// referenced recipes in each direction. Totals report the full
// reference counts.
func (s *QueryService) Item(ctx context.Context, token string) (*domain.ItemDetail, error) {
	var rawID string
	if domain.IsReadableID(token) {
		rawID = domain.ParseReadableItemID(token)
	} else {
		decoded, err := domain.DecodeItemID(token)
		if err != nil {
			return nil, err
		}
		rawID = decoded
	}

	item, err := s.artifacts.Item(ctx, domain.EncodeItemID(rawID))
	if err != nil {
		return nil, fmt.Errorf("resolving item %s: %w", rawID, err)
	}

	detail := &domain.ItemDetail{
		Item:               *item,
		TotalOutputRecipes: len(item.RecipesAsOutput),
		TotalInputRecipes:  len(item.RecipesAsInput),
	}
	detail.OutputRecipes = s.hydrateRefs(ctx, capRefs(item.RecipesAsOutput, s.maxHydrate))
	detail.InputRecipes = s.hydrateRefs(ctx, capRefs(item.RecipesAsInput, s.maxHydrate))
	return detail, nil
}

// hydrateRefs dereferences recipe refs into full recipes. Refs whose
// chunk is missing or whose index is out of range are dropped: refs
// are trusted at build time and a drifted dataset degrades instead of
// failing the lookup.
func (s *QueryService) hydrateRefs(ctx context.Context, refs []domain.RecipeRef) []domain.Recipe {
	recipes := make([]domain.Recipe, 0, len(refs))
	for _, ref := range refs {
		chunk, err := s.artifacts.RecipeChunk(ctx, ref.Machine, ref.Chunk)
		if err != nil {
			logger.Warn("Loading chunk %s/%d failed: %v", ref.Machine, ref.Chunk, err)
			continue
		}
		if ref.Index >= 0 && ref.Index < len(chunk) {
			recipes = append(recipes, chunk[ref.Index])
		}
	}
	return recipes
}

// Fluid resolves a fluid by encoded or readable id.
func (s *QueryService) Fluid(ctx context.Context, token string) (*domain.Fluid, error) {
	var name string
	if domain.IsReadableID(token) {
		name = domain.ParseReadableFluidID(token)
	} else {
		decoded, err := domain.DecodeItemID(token)
		if err != nil {
			return nil, err
		}
		name = decoded
	}

	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: empty fluid name", domain.ErrInvalidID)
	}

	fluids, err := s.artifacts.FluidsIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading fluids index: %w", err)
	}
	for i := range fluids {
		if fluids[i].Name == name {
			return &fluids[i], nil
		}
	}
	return nil, fmt.Errorf("fluid %s: %w", name, domain.ErrNotFound)
}

// Fluids returns the fluid index in published order.
func (s *QueryService) Fluids(ctx context.Context) ([]domain.Fluid, error) {
	fluids, err := s.artifacts.FluidsIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading fluids index: %w", err)
	}
	return fluids, nil
}

// Machines returns all machines, sorted by descending recipe count
// as published.
func (s *QueryService) Machines(ctx context.Context) ([]domain.Machine, error) {
	machines, err := s.artifacts.Machines(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading machine index: %w", err)
	}
	return machines, nil
}

// Machine returns one machine by id.
func (s *QueryService) Machine(ctx context.Context, machineID string) (*domain.Machine, error) {
	machines, err := s.artifacts.Machines(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading machine index: %w", err)
	}
	for i := range machines {
		if machines[i].ID == machineID {
			return &machines[i], nil
		}
	}
	return nil, fmt.Errorf("machine %s: %w", machineID, domain.ErrNotFound)
}

// RecipeChunk returns one chunk of a machine's recipe list. An
// absent chunk yields an empty list.
func (s *QueryService) RecipeChunk(
	ctx context.Context, machineID string, chunk int,
) ([]domain.Recipe, error) {
	recipes, err := s.artifacts.RecipeChunk(ctx, machineID, chunk)
	if err != nil {
		return nil, fmt.Errorf("loading chunk %s/%d: %w", machineID, chunk, err)
	}
	return recipes, nil
}

// capRefs truncates a ref list to at most n entries.
func capRefs(refs []domain.RecipeRef, n int) []domain.RecipeRef {
	if len(refs) > n {
		return refs[:n]
	}
	return refs
}
