// Package export reads the raw game-data export directory: the item
// and fluid catalogs, one recipe file per machine, and the auxiliary
// flat datasets.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gregdex/gregdex/internal/core/domain"
	"github.com/gregdex/gregdex/internal/core/ports/driven"
	"github.com/gregdex/gregdex/internal/logger"
)

// Ensure Reader implements the interface.
var _ driven.ExportReader = (*Reader)(nil)

// Export file names.
const (
	itemsFile       = "items.json"
	fluidsFile      = "fluids.json"
	recipesDir      = "recipes"
	materialsFile   = "gt_materials.json"
	beeBreedingFile = "bee_breeding.json"
	bloodMagicFile  = "blood_magic.json"
	oreVeinsFile    = "ore_veins.json"
	smallOresFile   = "small_ores.json"
)

// Reader reads a raw export directory. Individual record schemas are
// pass-through except for the fields the pipeline explicitly reads.
type Reader struct {
	dir string
}

// NewReader creates a reader over an export directory.
func NewReader(dir string) *Reader {
	return &Reader{dir: dir}
}

// Items returns the item catalog. The catalog is required: absence
// is a fatal misconfiguration for the pipeline.
func (r *Reader) Items(ctx context.Context) (map[string]domain.Item, error) {
	items, err := readJSON[map[string]domain.Item](filepath.Join(r.dir, itemsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrMissingCatalog, itemsFile)
		}
		return nil, err
	}
	return items, nil
}

// MachineIDs lists the recipe files, one machine per file, sorted.
// The recipe directory is required.
func (r *Reader) MachineIDs(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(r.dir, recipesDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s directory", domain.ErrMissingCatalog, recipesDir)
		}
		return nil, fmt.Errorf("reading recipe directory: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(ids)
	return ids, nil
}

// Recipes returns one machine's recipe list in file order.
func (r *Reader) Recipes(ctx context.Context, machineID string) ([]domain.Recipe, error) {
	return readJSON[[]domain.Recipe](filepath.Join(r.dir, recipesDir, machineID+".json"))
}

// Fluids returns the fluid catalog. Missing file yields an empty
// catalog: search degrades to item-only results.
func (r *Reader) Fluids(ctx context.Context) (map[string]domain.Fluid, error) {
	fluids, ok, err := readOptional[map[string]domain.Fluid](filepath.Join(r.dir, fluidsFile))
	if err != nil {
		return nil, err
	}
	if !ok {
		return map[string]domain.Fluid{}, nil
	}
	return fluids, nil
}

// Materials returns the material records, empty if absent.
func (r *Reader) Materials(ctx context.Context) ([]domain.Material, error) {
	materials, _, err := readOptional[[]domain.Material](filepath.Join(r.dir, materialsFile))
	return materials, err
}

// BeeBreeding returns the bee breeding data, empty if absent.
func (r *Reader) BeeBreeding(ctx context.Context) (*domain.BeeBreeding, error) {
	bees, ok, err := readOptional[domain.BeeBreeding](filepath.Join(r.dir, beeBreedingFile))
	if err != nil {
		return nil, err
	}
	if !ok {
		return &domain.BeeBreeding{}, nil
	}
	return &bees, nil
}

// BloodMagic returns the blood magic collections, empty if absent.
func (r *Reader) BloodMagic(ctx context.Context) (*domain.BloodMagic, error) {
	bm, ok, err := readOptional[domain.BloodMagic](filepath.Join(r.dir, bloodMagicFile))
	if err != nil {
		return nil, err
	}
	if !ok {
		return &domain.BloodMagic{}, nil
	}
	return &bm, nil
}

// OreVeins returns the ore vein list, empty if absent.
func (r *Reader) OreVeins(ctx context.Context) ([]domain.OreVein, error) {
	veins, _, err := readOptional[[]domain.OreVein](filepath.Join(r.dir, oreVeinsFile))
	return veins, err
}

// SmallOres returns the small ore list, empty if absent.
func (r *Reader) SmallOres(ctx context.Context) ([]domain.SmallOre, error) {
	ores, _, err := readOptional[[]domain.SmallOre](filepath.Join(r.dir, smallOresFile))
	return ores, err
}

// readJSON parses one JSON file into T. A missing file surfaces the
// raw os error so callers can distinguish absence.
func readJSON[T any](path string) (T, error) {
	var v T
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return v, err
		}
		return v, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("parsing %s: %w", path, err)
	}
	return v, nil
}

// readOptional parses one JSON file, reporting absence via the
// boolean instead of an error. Missing optional datasets are logged
// and substituted with zero values.
func readOptional[T any](path string) (T, bool, error) {
	v, err := readJSON[T](path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("Optional dataset %s not found, using empty default", filepath.Base(path))
			var zero T
			return zero, false, nil
		}
		return v, false, err
	}
	return v, true, nil
}
