package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gregdex/gregdex/internal/core/domain"
)

func lookupArtifacts() *stubArtifacts {
	rawID := "gregtech:gt.metaitem.01:32741"
	item := domain.Item{
		ID:          rawID,
		ModID:       "gregtech",
		DisplayName: "Iridium Alloy Ingot",
		RecipesAsOutput: []domain.RecipeRef{
			{Machine: "gt.recipe.assembler", Chunk: 0, Index: 0},
			{Machine: "gt.recipe.assembler", Chunk: 7, Index: 3},
		},
		RecipesAsInput: []domain.RecipeRef{
			{Machine: "crafting_table", Chunk: 0, Index: 1},
		},
	}

	return &stubArtifacts{
		items: map[string]domain.Item{
			domain.EncodeItemID(rawID): item,
		},
		machines: []domain.Machine{
			{ID: "gt.recipe.assembler", DisplayName: "Assembler", RecipeCount: 1203, Chunks: 3},
			{ID: "crafting_table", DisplayName: "Crafting Table", RecipeCount: 40, Chunks: 1},
		},
		chunks: map[string]map[int][]domain.Recipe{
			"gt.recipe.assembler": {
				0: {
					{Machine: "gt.recipe.assembler", EUPerTick: 32, Duration: 100},
				},
			},
			"crafting_table": {
				0: {
					{Machine: "crafting_table", GridWidth: 3, GridHeight: 3},
					{Machine: "crafting_table", GridWidth: 2, GridHeight: 2},
				},
			},
		},
		fluids: []domain.Fluid{
			{Name: "fluid.molten.iron", DisplayName: "Molten Iron"},
			{Name: "water", DisplayName: "Water"},
		},
	}
}

func TestItem_ByEncodedID(t *testing.T) {
	svc := NewQueryService(lookupArtifacts())

	detail, err := svc.Item(context.Background(), domain.EncodeItemID("gregtech:gt.metaitem.01:32741"))
	require.NoError(t, err)

	assert.Equal(t, "Iridium Alloy Ingot", detail.Item.DisplayName)
	assert.Equal(t, 2, detail.TotalOutputRecipes)
	assert.Equal(t, 1, detail.TotalInputRecipes)
}

func TestItem_ByReadableID(t *testing.T) {
	svc := NewQueryService(lookupArtifacts())

	detail, err := svc.Item(context.Background(), "gregtech-gt.metaitem.01-32741")
	require.NoError(t, err)
	assert.Equal(t, "gregtech:gt.metaitem.01:32741", detail.Item.ID)
}

func TestItem_HydratesRefsAndDropsMissingChunks(t *testing.T) {
	svc := NewQueryService(lookupArtifacts())

	detail, err := svc.Item(context.Background(), "gregtech-gt.metaitem.01-32741")
	require.NoError(t, err)

	// The second output ref points at chunk 7, which does not exist;
	// hydration drops it but the total still counts it.
	require.Len(t, detail.OutputRecipes, 1)
	assert.Equal(t, domain.ShapeMachine, detail.OutputRecipes[0].Shape())
	assert.Equal(t, 2, detail.TotalOutputRecipes)

	require.Len(t, detail.InputRecipes, 1)
	assert.Equal(t, 2, detail.InputRecipes[0].GridWidth)
}

func TestItem_HydrationCap(t *testing.T) {
	svc := NewQueryService(lookupArtifacts(), WithMaxHydratedRefs(1))

	detail, err := svc.Item(context.Background(), "gregtech-gt.metaitem.01-32741")
	require.NoError(t, err)

	assert.Len(t, detail.OutputRecipes, 1)
	assert.Equal(t, 2, detail.TotalOutputRecipes)
}

func TestItem_NotFound(t *testing.T) {
	svc := NewQueryService(lookupArtifacts())

	_, err := svc.Item(context.Background(), domain.EncodeItemID("minecraft:missing:0"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFluid_ByRawAndReadableID(t *testing.T) {
	svc := NewQueryService(lookupArtifacts())

	fluid, err := svc.Fluid(context.Background(), "fluid.molten.iron")
	require.NoError(t, err)
	assert.Equal(t, "Molten Iron", fluid.DisplayName)

	fluid, err = svc.Fluid(context.Background(), "fluid-molten-iron")
	require.NoError(t, err)
	assert.Equal(t, "Molten Iron", fluid.DisplayName)
}

func TestFluid_NotFound(t *testing.T) {
	svc := NewQueryService(lookupArtifacts())

	_, err := svc.Fluid(context.Background(), "fluid.molten.unobtainium")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMachines_List(t *testing.T) {
	svc := NewQueryService(lookupArtifacts())

	machines, err := svc.Machines(context.Background())
	require.NoError(t, err)
	require.Len(t, machines, 2)
	assert.Equal(t, "Assembler", machines[0].DisplayName)
}

func TestMachine_ByID(t *testing.T) {
	svc := NewQueryService(lookupArtifacts())

	machine, err := svc.Machine(context.Background(), "crafting_table")
	require.NoError(t, err)
	assert.Equal(t, "Crafting Table", machine.DisplayName)

	_, err = svc.Machine(context.Background(), "gt.recipe.imaginary")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecipeChunk_AbsentChunkIsEmpty(t *testing.T) {
	svc := NewQueryService(lookupArtifacts())

	recipes, err := svc.RecipeChunk(context.Background(), "gt.recipe.assembler", 99)
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestFluids_List(t *testing.T) {
	svc := NewQueryService(lookupArtifacts())

	fluids, err := svc.Fluids(context.Background())
	require.NoError(t, err)
	assert.Len(t, fluids, 2)
}
