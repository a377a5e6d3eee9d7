package domain

// DefaultChunkSize is the default number of recipes per chunk file.
// The chunk size is a pipeline-wide constant: every RecipeRef encodes
// positions in terms of it, so changing it without a full rebuild
// invalidates all existing references.
const DefaultChunkSize = 500

// RecipeRef is a weak reference to one recipe: it locates the recipe
// inside a machine's chunked recipe list without duplicating it.
// Referential integrity is established at build time and never
// re-validated at read time.
type RecipeRef struct {
	// Machine is the owning machine identifier.
	Machine string `json:"machine"`

	// Chunk is the chunk file number.
	Chunk int `json:"chunk"`

	// Index is the position within the chunk.
	Index int `json:"index"`
}

// RefFor returns the reference for the recipe at globalIndex within
// machineID's recipe list, partitioned into chunkSize-recipe chunks.
func RefFor(machineID string, globalIndex, chunkSize int) RecipeRef {
	return RecipeRef{
		Machine: machineID,
		Chunk:   globalIndex / chunkSize,
		Index:   globalIndex % chunkSize,
	}
}

// ChunkCount returns the number of chunks needed for n recipes.
func ChunkCount(n, chunkSize int) int {
	if n <= 0 {
		return 0
	}
	return (n + chunkSize - 1) / chunkSize
}

// RecipeItem is an item slot within a recipe.
type RecipeItem struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Amount      int    `json:"amount"`
}

// RecipeFluid is a fluid slot within a recipe.
type RecipeFluid struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Amount      int    `json:"amount"`
}

// RecipeShape discriminates the structural variants a recipe can take.
type RecipeShape string

const (
	// ShapeCrafting is a grid recipe with width/height and possible
	// empty cells.
	ShapeCrafting RecipeShape = "crafting"

	// ShapeMachine is a standard machine recipe with energy and
	// duration parameters.
	ShapeMachine RecipeShape = "machine"

	// ShapeThaumcraft is a modded recipe carrying aspect costs and a
	// research prerequisite.
	ShapeThaumcraft RecipeShape = "thaumcraft"
)

// Recipe belongs to exactly one machine. Recipes are immutable once
// written; a full pipeline re-run regenerates them.
//
// Item input slots may be nil: a nil slot is an empty crafting-grid
// cell and must be preserved positionally.
type Recipe struct {
	// Machine is the owning machine identifier.
	Machine string `json:"machine"`

	// RecipeType is the export's recipe type tag, passed through.
	RecipeType string `json:"recipeType"`

	// EUPerTick is the energy draw for machine recipes.
	EUPerTick int `json:"euPerTick,omitempty"`

	// Duration is the processing time in ticks for machine recipes.
	Duration int `json:"duration,omitempty"`

	// ItemInputs are the ordered input slots; nil entries are holes.
	ItemInputs []*RecipeItem `json:"itemInputs"`

	// FluidInputs are the fluid inputs.
	FluidInputs []RecipeFluid `json:"fluidInputs"`

	// ItemOutputs are the item outputs.
	ItemOutputs []RecipeItem `json:"itemOutputs"`

	// FluidOutputs are the fluid outputs.
	FluidOutputs []RecipeFluid `json:"fluidOutputs"`

	// GridWidth and GridHeight are set for crafting-grid recipes.
	GridWidth  int `json:"gridWidth,omitempty"`
	GridHeight int `json:"gridHeight,omitempty"`

	// Aspects maps aspect names to costs for Thaumcraft recipes.
	Aspects map[string]int `json:"aspects,omitempty"`

	// Research is the Thaumcraft research prerequisite.
	Research string `json:"research,omitempty"`
}

// Shape classifies the recipe so consumers can pattern-match on its
// variant instead of probing optional fields.
func (r *Recipe) Shape() RecipeShape {
	switch {
	case len(r.Aspects) > 0 || r.Research != "":
		return ShapeThaumcraft
	case r.GridWidth > 0:
		return ShapeCrafting
	default:
		return ShapeMachine
	}
}
