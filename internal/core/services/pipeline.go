package services

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/gregdex/gregdex/internal/core/domain"
	"github.com/gregdex/gregdex/internal/core/ports/driven"
	"github.com/gregdex/gregdex/internal/core/ports/driving"
	"github.com/gregdex/gregdex/internal/logger"
	"github.com/gregdex/gregdex/internal/naming"
	"github.com/gregdex/gregdex/internal/trigram"
)

// Ensure PipelineService implements the interface.
var _ driving.PipelineService = (*PipelineService)(nil)

// PipelineService runs the offline ingestion pipeline: item catalog
// load, per-machine recipe chunking and cross-referencing, trigram
// index construction, auxiliary dataset copy-through, and an atomic
// publish of the whole dataset.
type PipelineService struct {
	export    driven.ExportReader
	artifacts driven.ArtifactWriter
	chunkSize int
	workers   int
}

// PipelineOption configures the pipeline service.
type PipelineOption func(*PipelineService)

// WithChunkSize sets the recipe chunk size. The same value must be
// used when reading the dataset back; it is recorded in the manifest.
func WithChunkSize(size int) PipelineOption {
	return func(s *PipelineService) {
		if size > 0 {
			s.chunkSize = size
		}
	}
}

// WithWorkers sets how many machines are processed concurrently.
func WithWorkers(n int) PipelineOption {
	return func(s *PipelineService) {
		if n > 0 {
			s.workers = n
		}
	}
}

// NewPipelineService creates a pipeline service over an export reader
// and an artifact writer.
func NewPipelineService(
	export driven.ExportReader,
	artifacts driven.ArtifactWriter,
	opts ...PipelineOption,
) *PipelineService {
	s := &PipelineService{
		export:    export,
		artifacts: artifacts,
		chunkSize: domain.DefaultChunkSize,
		workers:   runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// machineResult is the output of one machine's recipe pass: the
// machine record plus this machine's share of the per-item reference
// accumulators. Shards are disjoint per machine and merged after all
// workers finish, so within-machine reference order stays stable.
type machineResult struct {
	machine domain.Machine
	outRefs map[string][]domain.RecipeRef
	inRefs  map[string][]domain.RecipeRef
}

// Run executes one full pipeline pass. Any stage error aborts the
// run and discards the staging area; the previously published
// dataset is left intact.
func (s *PipelineService) Run(ctx context.Context) (*domain.Manifest, error) {
	logger.Section("Pipeline Run")

	manifest, err := s.run(ctx)
	if err != nil {
		if abortErr := s.artifacts.Abort(); abortErr != nil {
			logger.Warn("Discarding staging area failed: %v", abortErr)
		}
		return nil, err
	}
	return manifest, nil
}

func (s *PipelineService) run(ctx context.Context) (*domain.Manifest, error) {
	// Step 1: item catalog. Required; ids sorted for deterministic
	// index positions (the trigram index addresses items by position).
	logger.Info("Step 1: Processing items")
	items, err := s.export.Items(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading item catalog: %w", err)
	}
	logger.Debug("Found %d items", len(items))

	itemIDs := make([]string, 0, len(items))
	for id := range items {
		itemIDs = append(itemIDs, id)
	}
	sort.Strings(itemIDs)

	known := make(map[string]struct{}, len(itemIDs))
	itemsIndex := make([]domain.ItemSummary, 0, len(itemIDs))
	for _, id := range itemIDs {
		known[id] = struct{}{}
		item := items[id]
		itemsIndex = append(itemsIndex, domain.ItemSummary{
			ID:          id,
			DisplayName: item.DisplayName,
			ModID:       item.ModID,
		})
	}

	// Step 2: recipes. One sequential pass per machine; machines are
	// independent, so they run concurrently with disjoint ref shards.
	logger.Info("Step 2: Processing recipes")
	machineIDs, err := s.export.MachineIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing recipe files: %w", err)
	}
	logger.Debug("Found %d recipe files", len(machineIDs))

	results := make([]machineResult, len(machineIDs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, machineID := range machineIDs {
		i, machineID := i, machineID
		g.Go(func() error {
			res, err := s.processMachine(gctx, machineID, known)
			if err != nil {
				return fmt.Errorf("processing machine %s: %w", machineID, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Merge shards in machine order. Per-item merge is plain list
	// concatenation, so the result is deterministic for a given
	// machine ordering.
	outRefs := make(map[string][]domain.RecipeRef)
	inRefs := make(map[string][]domain.RecipeRef)
	machines := make([]domain.Machine, 0, len(results))
	totalRecipes := 0
	for _, res := range results {
		machines = append(machines, res.machine)
		totalRecipes += res.machine.RecipeCount
		for id, refs := range res.outRefs {
			outRefs[id] = append(outRefs[id], refs...)
		}
		for id, refs := range res.inRefs {
			inRefs[id] = append(inRefs[id], refs...)
		}
	}
	logger.Debug("Total recipes: %d", totalRecipes)

	sort.SliceStable(machines, func(i, j int) bool {
		return machines[i].RecipeCount > machines[j].RecipeCount
	})
	if err := s.artifacts.WriteMachines(ctx, machines); err != nil {
		return nil, fmt.Errorf("writing machine index: %w", err)
	}

	// Step 3: per-item records and item indexes.
	logger.Info("Step 3: Writing per-item files")
	for _, id := range itemIDs {
		item := items[id]
		item.ID = id
		item.RecipesAsOutput = orEmpty(outRefs[id])
		item.RecipesAsInput = orEmpty(inRefs[id])
		if err := s.artifacts.WriteItem(ctx, item); err != nil {
			return nil, fmt.Errorf("writing item %s: %w", id, err)
		}
	}
	if err := s.artifacts.WriteItemsIndex(ctx, itemsIndex); err != nil {
		return nil, fmt.Errorf("writing items index: %w", err)
	}

	byMod := make(map[string][]domain.ModItem)
	for _, entry := range itemsIndex {
		byMod[entry.ModID] = append(byMod[entry.ModID], domain.ModItem{
			ID:          entry.ID,
			DisplayName: entry.DisplayName,
		})
	}
	if err := s.artifacts.WriteItemsByMod(ctx, byMod); err != nil {
		return nil, fmt.Errorf("writing items-by-mod index: %w", err)
	}

	// Step 4: fluids. No cross-references are built for fluids; the
	// query engine matches them with a linear name scan instead.
	logger.Info("Step 4: Processing fluids")
	fluids, err := s.export.Fluids(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading fluid catalog: %w", err)
	}
	fluidNames := make([]string, 0, len(fluids))
	for name := range fluids {
		fluidNames = append(fluidNames, name)
	}
	sort.Strings(fluidNames)

	fluidsIndex := make([]domain.Fluid, 0, len(fluidNames))
	for _, name := range fluidNames {
		fluid := fluids[name]
		fluid.Name = name
		fluidsIndex = append(fluidsIndex, fluid)
		if err := s.artifacts.WriteFluid(ctx, fluid); err != nil {
			return nil, fmt.Errorf("writing fluid %s: %w", name, err)
		}
	}
	if err := s.artifacts.WriteFluidsIndex(ctx, fluidsIndex); err != nil {
		return nil, fmt.Errorf("writing fluids index: %w", err)
	}
	logger.Debug("Processed %d fluids", len(fluidsIndex))

	// Step 5: trigram index over item display names.
	logger.Info("Step 5: Building search index")
	names := make([]string, len(itemsIndex))
	for i := range itemsIndex {
		names[i] = itemsIndex[i].DisplayName
	}
	trigrams := trigram.Build(names)
	if err := s.artifacts.WriteTrigramIndex(ctx, trigrams); err != nil {
		return nil, fmt.Errorf("writing trigram index: %w", err)
	}
	logger.Debug("Built %d trigram entries", len(trigrams))

	// Step 6: auxiliary datasets, copied through.
	logger.Info("Step 6: Copying auxiliary datasets")
	if err := s.copyAuxiliary(ctx); err != nil {
		return nil, err
	}

	manifest := domain.Manifest{
		BuildID:   uuid.NewString(),
		BuiltAt:   time.Now().UTC(),
		ChunkSize: s.chunkSize,
		Items:     len(itemsIndex),
		Recipes:   totalRecipes,
		Machines:  len(machines),
		Fluids:    len(fluidsIndex),
	}
	if err := s.artifacts.WriteManifest(ctx, manifest); err != nil {
		return nil, fmt.Errorf("writing manifest: %w", err)
	}

	if err := s.artifacts.Publish(ctx); err != nil {
		return nil, fmt.Errorf("publishing dataset: %w", err)
	}

	logger.Info("Published build %s: %d items, %d recipes, %d machines, %d fluids",
		manifest.BuildID, manifest.Items, manifest.Recipes, manifest.Machines, manifest.Fluids)
	return &manifest, nil
}

// processMachine loads one machine's recipes, writes its chunks and
// builds its reference shard.
func (s *PipelineService) processMachine(
	ctx context.Context, machineID string, known map[string]struct{},
) (machineResult, error) {
	recipes, err := s.export.Recipes(ctx, machineID)
	if err != nil {
		return machineResult{}, fmt.Errorf("loading recipes: %w", err)
	}

	chunks, err := s.artifacts.WriteRecipeChunks(ctx, machineID, recipes)
	if err != nil {
		return machineResult{}, fmt.Errorf("writing chunks: %w", err)
	}

	outRefs, inRefs := buildRecipeRefs(machineID, recipes, s.chunkSize, known)

	logger.Debug("Processed %s (%d recipes, %d chunks)", machineID, len(recipes), chunks)
	return machineResult{
		machine: domain.Machine{
			ID:          machineID,
			DisplayName: naming.MachineDisplayName(machineID),
			RecipeCount: len(recipes),
			Chunks:      chunks,
			Category:    naming.MachineCategory(machineID),
		},
		outRefs: outRefs,
		inRefs:  inRefs,
	}, nil
}

// buildRecipeRefs is the cross-reference pass: a single sequential
// walk over one machine's recipes in file order, appending a
// RecipeRef to the accumulator of every known item appearing in a
// recipe's slots. The position arithmetic depends on file order, so
// this walk must not be reordered or parallelised within a machine.
//
// Item ids not present in the catalog are skipped silently: the raw
// export is expected to contain dangling references. Fluid slots are
// not cross-referenced.
func buildRecipeRefs(
	machineID string, recipes []domain.Recipe, chunkSize int, known map[string]struct{},
) (outRefs, inRefs map[string][]domain.RecipeRef) {
	outRefs = make(map[string][]domain.RecipeRef)
	inRefs = make(map[string][]domain.RecipeRef)

	for i := range recipes {
		ref := domain.RefFor(machineID, i, chunkSize)

		for _, out := range recipes[i].ItemOutputs {
			if out.ID == "" {
				continue
			}
			if _, ok := known[out.ID]; !ok {
				continue
			}
			outRefs[out.ID] = append(outRefs[out.ID], ref)
		}

		for _, in := range recipes[i].ItemInputs {
			// nil slots are empty crafting-grid cells.
			if in == nil || in.ID == "" {
				continue
			}
			if _, ok := known[in.ID]; !ok {
				continue
			}
			inRefs[in.ID] = append(inRefs[in.ID], ref)
		}
	}
	return outRefs, inRefs
}

// copyAuxiliary passes the small flat datasets through. Each one is
// optional: the export reader substitutes empty defaults for missing
// files.
func (s *PipelineService) copyAuxiliary(ctx context.Context) error {
	materials, err := s.export.Materials(ctx)
	if err != nil {
		return fmt.Errorf("loading materials: %w", err)
	}
	if err := s.artifacts.WriteMaterials(ctx, materials); err != nil {
		return fmt.Errorf("writing materials: %w", err)
	}

	bees, err := s.export.BeeBreeding(ctx)
	if err != nil {
		return fmt.Errorf("loading bee breeding data: %w", err)
	}
	if err := s.artifacts.WriteBeeMutations(ctx, bees.Mutations); err != nil {
		return fmt.Errorf("writing bee mutations: %w", err)
	}
	if err := s.artifacts.WriteBeeSpecies(ctx, bees.Species); err != nil {
		return fmt.Errorf("writing bee species: %w", err)
	}

	bloodMagic, err := s.export.BloodMagic(ctx)
	if err != nil {
		return fmt.Errorf("loading blood magic data: %w", err)
	}
	if err := s.artifacts.WriteBloodMagic(ctx, bloodMagic); err != nil {
		return fmt.Errorf("writing blood magic data: %w", err)
	}

	veins, err := s.export.OreVeins(ctx)
	if err != nil {
		return fmt.Errorf("loading ore veins: %w", err)
	}
	if err := s.artifacts.WriteOreVeins(ctx, veins); err != nil {
		return fmt.Errorf("writing ore veins: %w", err)
	}

	smallOres, err := s.export.SmallOres(ctx)
	if err != nil {
		return fmt.Errorf("loading small ores: %w", err)
	}
	if err := s.artifacts.WriteSmallOres(ctx, smallOres); err != nil {
		return fmt.Errorf("writing small ores: %w", err)
	}

	return nil
}

// orEmpty normalises a nil ref list to an empty one so per-item
// records always carry arrays.
func orEmpty(refs []domain.RecipeRef) []domain.RecipeRef {
	if refs == nil {
		return []domain.RecipeRef{}
	}
	return refs
}
