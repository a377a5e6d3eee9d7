package artifacts

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gregdex/gregdex/internal/core/domain"
	"github.com/gregdex/gregdex/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.ArtifactWriter = (*Writer)(nil)

// Writer stages dataset artifacts in a sibling directory of the data
// directory and swaps them in atomically on Publish. A reader serving
// requests during regeneration keeps seeing the previous build until
// the rename lands.
type Writer struct {
	mu        sync.Mutex
	dataDir   string
	staging   string
	chunkSize int
	published bool
}

// WriterOption configures the writer.
type WriterOption func(*Writer)

// WithChunkSize sets the recipe chunk size. Must match the value the
// pipeline records in the manifest.
func WithChunkSize(size int) WriterOption {
	return func(w *Writer) {
		if size > 0 {
			w.chunkSize = size
		}
	}
}

// NewWriter creates a writer staging into "<dataDir>.staging". Any
// leftover staging directory from a crashed run is discarded.
func NewWriter(dataDir string, opts ...WriterOption) (*Writer, error) {
	w := &Writer{
		dataDir:   dataDir,
		staging:   dataDir + ".staging",
		chunkSize: domain.DefaultChunkSize,
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := os.RemoveAll(w.staging); err != nil {
		return nil, fmt.Errorf("clearing staging directory: %w", err)
	}
	for _, dir := range []string{itemsDir, fluidsDir, recipesDir, searchDir} {
		if err := os.MkdirAll(filepath.Join(w.staging, dir), 0o755); err != nil {
			return nil, fmt.Errorf("creating staging directory: %w", err)
		}
	}
	return w, nil
}

// WriteItemsIndex writes the ordered items index.
func (w *Writer) WriteItemsIndex(ctx context.Context, items []domain.ItemSummary) error {
	return w.writeJSON(itemsIndexFile, items)
}

// WriteItem writes one per-item record keyed by the encoded id.
func (w *Writer) WriteItem(ctx context.Context, item domain.Item) error {
	return w.writeJSON(itemPath(domain.EncodeItemID(item.ID)), item)
}

// WriteItemsByMod writes the mod id to item list mapping.
func (w *Writer) WriteItemsByMod(ctx context.Context, byMod map[string][]domain.ModItem) error {
	return w.writeJSON(filepath.Join(searchDir, itemsByModFile), byMod)
}

// WriteRecipeChunks splits recipes into contiguous fixed-size chunks
// in original order and writes each as its own file. If any chunk
// write fails the machine's output is inconsistent and the error
// aborts the run; staging plus atomic publish means no partial state
// ever reaches readers.
func (w *Writer) WriteRecipeChunks(
	ctx context.Context, machineID string, recipes []domain.Recipe,
) (int, error) {
	if err := os.MkdirAll(filepath.Join(w.staging, recipesDir, machineID), 0o755); err != nil {
		return 0, fmt.Errorf("creating machine directory: %w", err)
	}

	chunks := domain.ChunkCount(len(recipes), w.chunkSize)
	for c := 0; c < chunks; c++ {
		start := c * w.chunkSize
		end := start + w.chunkSize
		if end > len(recipes) {
			end = len(recipes)
		}
		if err := w.writeJSON(chunkPath(machineID, c), recipes[start:end]); err != nil {
			return 0, err
		}
	}
	return chunks, nil
}

// WriteMachines writes the machine index.
func (w *Writer) WriteMachines(ctx context.Context, machines []domain.Machine) error {
	return w.writeJSON(machinesFile, machines)
}

// WriteFluidsIndex writes the ordered fluids index.
func (w *Writer) WriteFluidsIndex(ctx context.Context, fluids []domain.Fluid) error {
	return w.writeJSON(fluidsIndexFile, fluids)
}

// WriteFluid writes one per-fluid record.
func (w *Writer) WriteFluid(ctx context.Context, fluid domain.Fluid) error {
	return w.writeJSON(fluidPath(fluid.Name), fluid)
}

// WriteTrigramIndex writes the trigram posting lists.
func (w *Writer) WriteTrigramIndex(ctx context.Context, index map[string][]int) error {
	return w.writeJSON(filepath.Join(searchDir, trigramsFile), index)
}

// WriteMaterials writes the material records.
func (w *Writer) WriteMaterials(ctx context.Context, materials []domain.Material) error {
	return w.writeJSON(materialsFile, emptyIfNil(materials))
}

// WriteBeeMutations writes the bee mutation list.
func (w *Writer) WriteBeeMutations(ctx context.Context, mutations []domain.BeeMutation) error {
	return w.writeJSON(beeMutationsFile, emptyIfNil(mutations))
}

// WriteBeeSpecies writes the bee species list.
func (w *Writer) WriteBeeSpecies(ctx context.Context, species []domain.BeeSpecies) error {
	return w.writeJSON(beeSpeciesFile, emptyIfNil(species))
}

// WriteOreVeins writes the ore vein list.
func (w *Writer) WriteOreVeins(ctx context.Context, veins []domain.OreVein) error {
	return w.writeJSON(oreVeinsFile, emptyIfNil(veins))
}

// WriteSmallOres writes the small ore list.
func (w *Writer) WriteSmallOres(ctx context.Context, ores []domain.SmallOre) error {
	return w.writeJSON(smallOresFile, emptyIfNil(ores))
}

// WriteBloodMagic writes the blood magic collections.
func (w *Writer) WriteBloodMagic(ctx context.Context, bm *domain.BloodMagic) error {
	if bm == nil {
		bm = &domain.BloodMagic{}
	}
	return w.writeJSON(bloodMagicFile, bm)
}

// WriteManifest writes the build manifest.
func (w *Writer) WriteManifest(ctx context.Context, manifest domain.Manifest) error {
	return w.writeJSON(manifestFile, manifest)
}

// Publish swaps the staged dataset over the live one. The previous
// build is moved aside before the rename and removed afterwards, so
// the live path transitions in a single rename.
func (w *Writer) Publish(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.published {
		return fmt.Errorf("dataset already published")
	}

	previous := w.dataDir + ".previous"
	if err := os.RemoveAll(previous); err != nil {
		return fmt.Errorf("clearing previous dataset: %w", err)
	}
	if _, err := os.Stat(w.dataDir); err == nil {
		if err := os.Rename(w.dataDir, previous); err != nil {
			return fmt.Errorf("moving previous dataset aside: %w", err)
		}
	}
	if err := os.Rename(w.staging, w.dataDir); err != nil {
		return fmt.Errorf("publishing dataset: %w", err)
	}
	if err := os.RemoveAll(previous); err != nil {
		return fmt.Errorf("removing previous dataset: %w", err)
	}

	w.published = true
	return nil
}

// Abort discards the staging area.
func (w *Writer) Abort() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.published {
		return nil
	}
	return os.RemoveAll(w.staging)
}

// writeJSON marshals v into one staged artifact file. Concurrent
// machine workers write disjoint files, so no locking is needed here.
func (w *Writer) writeJSON(rel string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshalling %s: %w", rel, err)
	}
	if err := os.WriteFile(filepath.Join(w.staging, rel), data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	return nil
}

// emptyIfNil keeps absent optional datasets as empty JSON arrays.
func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
