package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/gregdex/gregdex/internal/core/domain"
	"github.com/gregdex/gregdex/internal/core/ports/driven"
	"github.com/gregdex/gregdex/internal/core/ports/driving"
	"github.com/gregdex/gregdex/internal/logger"
	"github.com/gregdex/gregdex/internal/trigram"
)

// Ensure QueryService implements the interface.
var _ driving.QueryService = (*QueryService)(nil)

// DefaultSearchLimit is the result cap when the caller passes none.
const DefaultSearchLimit = 15

// Scoring constants. Item boosts are cumulative on top of the
// trigram overlap count; the nested checks only apply to names that
// already contain the query. Fluid scores are a flat tier on a
// separate scale.
const (
	itemContainsBoost   = 100
	itemExactBoost      = 200
	itemPrefixBoost     = 50
	fluidContainsScore  = 50
	fluidExactScore     = 300
	fluidPrefixScore    = 150
	minQueryLength      = 2
	defaultHydratedRefs = 50
)

// QueryService answers searches and lookups over the published
// dataset through a caching artifact reader.
type QueryService struct {
	artifacts    driven.ArtifactReader
	defaultLimit int
	maxHydrate   int
}

// QueryOption configures the query service.
type QueryOption func(*QueryService)

// WithDefaultLimit sets the search result cap used when the caller
// passes a non-positive limit.
func WithDefaultLimit(limit int) QueryOption {
	return func(s *QueryService) {
		if limit > 0 {
			s.defaultLimit = limit
		}
	}
}

// WithMaxHydratedRefs caps how many recipe references are resolved
// into full recipes per direction on item lookups.
func WithMaxHydratedRefs(n int) QueryOption {
	return func(s *QueryService) {
		if n > 0 {
			s.maxHydrate = n
		}
	}
}

// NewQueryService creates a query service over an artifact reader.
func NewQueryService(artifacts driven.ArtifactReader, opts ...QueryOption) *QueryService {
	s := &QueryService{
		artifacts:    artifacts,
		defaultLimit: DefaultSearchLimit,
		maxHydrate:   defaultHydratedRefs,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search performs fuzzy search over item and fluid display names.
//
// Items are scored by trigram overlap with substring, exact and
// prefix boosts; fluids are matched by a linear substring scan on
// their own flat score tier. Results are concatenated, sorted by
// descending score (stable on insertion order for ties) and
// truncated to the limit.
func (s *QueryService) Search(
	ctx context.Context, query string, limit int,
) ([]domain.SearchResult, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	// Short queries return empty without touching the index.
	if len(query) < minQueryLength {
		logger.Debug("Query below minimum length, returning no results")
		return []domain.SearchResult{}, nil
	}

	if limit <= 0 {
		limit = s.defaultLimit
	}
	logger.Debug("Limit: %d", limit)

	q := strings.ToLower(query)

	index, err := s.artifacts.TrigramIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading trigram index: %w", err)
	}
	itemsIndex, err := s.artifacts.ItemsIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading items index: %w", err)
	}

	// Accumulate trigram overlap per item position. A two-character
	// query yields no trigrams and falls through to the fluid scan.
	overlaps := make(map[int]int)
	for _, tri := range trigram.Extract(q) {
		for _, pos := range index[tri] {
			overlaps[pos]++
		}
	}
	logger.Debug("Candidate items: %d", len(overlaps))

	// Walk candidates in ascending position so tie ordering after the
	// stable sort is deterministic.
	positions := make([]int, 0, len(overlaps))
	for pos := range overlaps {
		positions = append(positions, pos)
	}
	sort.Ints(positions)

	results := make([]domain.SearchResult, 0, len(positions))
	for _, pos := range positions {
		if pos < 0 || pos >= len(itemsIndex) {
			continue
		}
		item := itemsIndex[pos]

		score := overlaps[pos]
		nameLower := strings.ToLower(item.DisplayName)
		if strings.Contains(nameLower, q) {
			score += itemContainsBoost
			if nameLower == q {
				score += itemExactBoost
			}
			if strings.HasPrefix(nameLower, q) {
				score += itemPrefixBoost
			}
		}

		results = append(results, domain.SearchResult{
			ID:          item.ID,
			DisplayName: item.DisplayName,
			ModID:       item.ModID,
			Type:        domain.ResultTypeItem,
			Score:       score,
		})
	}

	// Fluids are few enough for a linear scan instead of an index.
	fluids, err := s.artifacts.FluidsIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading fluids index: %w", err)
	}
	for _, fluid := range fluids {
		nameLower := strings.ToLower(fluid.DisplayName)
		if !strings.Contains(nameLower, q) {
			continue
		}

		score := fluidContainsScore
		switch {
		case nameLower == q:
			score = fluidExactScore
		case strings.HasPrefix(nameLower, q):
			score = fluidPrefixScore
		}

		results = append(results, domain.SearchResult{
			ID:          fluid.Name,
			DisplayName: fluid.DisplayName,
			Type:        domain.ResultTypeFluid,
			Score:       score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}

	logger.Debug("Final results: %d", len(results))
	return results, nil
}
