package driven

import (
	"context"

	"github.com/gregdex/gregdex/internal/core/domain"
)

// ArtifactWriter stages the processed dataset and publishes it
// atomically. The pipeline is the sole writer of all artifacts.
//
// All writes go to a staging area; nothing is visible to readers
// until Publish swaps the staging area over the live dataset in one
// rename. A failed run calls Abort instead, leaving the previous
// dataset untouched.
type ArtifactWriter interface {
	// WriteItemsIndex writes the ordered items index.
	WriteItemsIndex(ctx context.Context, items []domain.ItemSummary) error

	// WriteItem writes one per-item record, keyed by the encoded id.
	WriteItem(ctx context.Context, item domain.Item) error

	// WriteItemsByMod writes the mod id to item list mapping.
	WriteItemsByMod(ctx context.Context, byMod map[string][]domain.ModItem) error

	// WriteRecipeChunks partitions one machine's recipes into
	// fixed-size contiguous chunks, preserving order, and writes each
	// as an independently addressable unit. Returns the chunk count.
	WriteRecipeChunks(ctx context.Context, machineID string, recipes []domain.Recipe) (int, error)

	// WriteMachines writes the machine index.
	WriteMachines(ctx context.Context, machines []domain.Machine) error

	// WriteFluidsIndex writes the ordered fluids index.
	WriteFluidsIndex(ctx context.Context, fluids []domain.Fluid) error

	// WriteFluid writes one per-fluid record keyed by fluid name.
	WriteFluid(ctx context.Context, fluid domain.Fluid) error

	// WriteTrigramIndex writes the trigram posting lists.
	WriteTrigramIndex(ctx context.Context, index map[string][]int) error

	// WriteMaterials writes the material records.
	WriteMaterials(ctx context.Context, materials []domain.Material) error

	// WriteBeeMutations writes the bee mutation list.
	WriteBeeMutations(ctx context.Context, mutations []domain.BeeMutation) error

	// WriteBeeSpecies writes the bee species list.
	WriteBeeSpecies(ctx context.Context, species []domain.BeeSpecies) error

	// WriteOreVeins writes the ore vein list.
	WriteOreVeins(ctx context.Context, veins []domain.OreVein) error

	// WriteSmallOres writes the small ore list.
	WriteSmallOres(ctx context.Context, ores []domain.SmallOre) error

	// WriteBloodMagic writes the blood magic collections.
	WriteBloodMagic(ctx context.Context, bm *domain.BloodMagic) error

	// WriteManifest writes the build manifest.
	WriteManifest(ctx context.Context, manifest domain.Manifest) error

	// Publish atomically replaces the live dataset with the staged
	// one. After Publish the writer must not be reused.
	Publish(ctx context.Context) error

	// Abort discards the staging area.
	Abort() error
}

// ArtifactReader provides read access to the published dataset.
//
// Implementations cache parsed artifacts for the process lifetime:
// the corpus is finite and rebuilt wholesale, so the cache only needs
// invalidating when a new build is published. Concurrent reads of the
// same uncached artifact must collapse into a single load.
type ArtifactReader interface {
	// Manifest returns the build manifest. ErrNotBuilt if absent.
	Manifest(ctx context.Context) (*domain.Manifest, error)

	// ItemsIndex returns the ordered items index. Required artifact:
	// absence is an error, not an empty default.
	ItemsIndex(ctx context.Context) ([]domain.ItemSummary, error)

	// Item returns one item record by encoded id. ErrNotFound if the
	// item does not exist.
	Item(ctx context.Context, encodedID string) (*domain.Item, error)

	// ItemsByMod returns the mod id to item list mapping.
	ItemsByMod(ctx context.Context) (map[string][]domain.ModItem, error)

	// Machines returns the machine index.
	Machines(ctx context.Context) ([]domain.Machine, error)

	// RecipeChunk returns one chunk of a machine's recipes. An absent
	// chunk file yields an empty list, not an error: a partially
	// regenerated dataset degrades rather than fails.
	RecipeChunk(ctx context.Context, machineID string, chunk int) ([]domain.Recipe, error)

	// FluidsIndex returns the ordered fluids index.
	FluidsIndex(ctx context.Context) ([]domain.Fluid, error)

	// TrigramIndex returns the trigram posting lists.
	TrigramIndex(ctx context.Context) (map[string][]int, error)

	// Materials returns the material records.
	Materials(ctx context.Context) ([]domain.Material, error)

	// BeeMutations returns the bee mutation list.
	BeeMutations(ctx context.Context) ([]domain.BeeMutation, error)

	// BeeSpecies returns the bee species list.
	BeeSpecies(ctx context.Context) ([]domain.BeeSpecies, error)

	// OreVeins returns the ore vein list.
	OreVeins(ctx context.Context) ([]domain.OreVein, error)

	// SmallOres returns the small ore list.
	SmallOres(ctx context.Context) ([]domain.SmallOre, error)

	// BloodMagic returns the blood magic collections.
	BloodMagic(ctx context.Context) (*domain.BloodMagic, error)

	// Close releases watcher resources.
	Close() error
}
