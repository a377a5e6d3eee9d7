package driving

import (
	"context"

	"github.com/gregdex/gregdex/internal/core/domain"
)

// QueryService answers lookups and searches over the published
// dataset. Absent entities surface as domain.ErrNotFound, never as
// panics or process faults; only missing top-level catalogs are
// treated as fatal misconfiguration.
type QueryService interface {
	// Search performs fuzzy search over item and fluid names.
	// Queries shorter than two characters return no results.
	// A non-positive limit selects the configured default.
	Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error)

	// Item resolves an item by encoded or readable id and hydrates
	// its first referenced recipes in each direction.
	Item(ctx context.Context, token string) (*domain.ItemDetail, error)

	// Fluid resolves a fluid by encoded or readable id.
	Fluid(ctx context.Context, token string) (*domain.Fluid, error)

	// Fluids returns the ordered fluid index.
	Fluids(ctx context.Context) ([]domain.Fluid, error)

	// Machines returns all machines, sorted by descending recipe count.
	Machines(ctx context.Context) ([]domain.Machine, error)

	// Machine returns one machine by id.
	Machine(ctx context.Context, machineID string) (*domain.Machine, error)

	// RecipeChunk returns one chunk of a machine's recipe list.
	RecipeChunk(ctx context.Context, machineID string, chunk int) ([]domain.Recipe, error)
}
