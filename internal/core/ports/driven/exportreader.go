package driven

import (
	"context"

	"github.com/gregdex/gregdex/internal/core/domain"
)

// ExportReader reads the raw game-data export directory.
//
// The item catalog and the recipe directory are required: their
// absence is a fatal misconfiguration surfacing ErrMissingCatalog.
// Every other dataset is optional and absence yields an empty
// default, logged but not fatal.
type ExportReader interface {
	// Items returns the item catalog keyed by raw item id. The
	// returned items carry no recipe references yet.
	Items(ctx context.Context) (map[string]domain.Item, error)

	// MachineIDs returns the ids of all recipe files, sorted.
	MachineIDs(ctx context.Context) ([]string, error)

	// Recipes returns one machine's recipe list in file order. That
	// order is what all chunk and reference arithmetic is based on.
	Recipes(ctx context.Context, machineID string) ([]domain.Recipe, error)

	// Fluids returns the fluid catalog keyed by fluid name.
	Fluids(ctx context.Context) (map[string]domain.Fluid, error)

	// Materials returns the material records.
	Materials(ctx context.Context) ([]domain.Material, error)

	// BeeBreeding returns the bee mutation and species data.
	BeeBreeding(ctx context.Context) (*domain.BeeBreeding, error)

	// BloodMagic returns the blood magic recipe collections.
	BloodMagic(ctx context.Context) (*domain.BloodMagic, error)

	// OreVeins returns the ore vein definitions.
	OreVeins(ctx context.Context) ([]domain.OreVein, error)

	// SmallOres returns the small ore definitions.
	SmallOres(ctx context.Context) ([]domain.SmallOre, error)
}
