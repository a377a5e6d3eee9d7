package export

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gregdex/gregdex/internal/core/domain"
)

func writeFile(t *testing.T, dir, name string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
}

func exportFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	writeFile(t, dir, "items.json", map[string]domain.Item{
		"gregtech:item.alpha:0": {ModID: "gregtech", DisplayName: "Alpha"},
	})
	writeFile(t, dir, "fluids.json", map[string]domain.Fluid{
		"water": {DisplayName: "Water"},
	})

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "recipes"), 0o755))
	writeFile(t, filepath.Join(dir, "recipes"), "gt.recipe.assembler.json", []domain.Recipe{
		{Machine: "gt.recipe.assembler", EUPerTick: 32, Duration: 100},
	})
	writeFile(t, filepath.Join(dir, "recipes"), "crafting_table.json", []domain.Recipe{})

	return dir
}

func TestReader_Items(t *testing.T) {
	reader := NewReader(exportFixture(t))

	items, err := reader.Items(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Alpha", items["gregtech:item.alpha:0"].DisplayName)
}

func TestReader_ItemsMissingIsFatal(t *testing.T) {
	reader := NewReader(t.TempDir())

	_, err := reader.Items(context.Background())
	assert.ErrorIs(t, err, domain.ErrMissingCatalog)
}

func TestReader_MachineIDsSorted(t *testing.T) {
	reader := NewReader(exportFixture(t))

	ids, err := reader.MachineIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"crafting_table", "gt.recipe.assembler"}, ids)
}

func TestReader_MachineIDsSkipsNonJSON(t *testing.T) {
	dir := exportFixture(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "recipes", "README.txt"), []byte("x"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "recipes", "nested"), 0o755))

	reader := NewReader(dir)
	ids, err := reader.MachineIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"crafting_table", "gt.recipe.assembler"}, ids)
}

func TestReader_MachineIDsMissingDirIsFatal(t *testing.T) {
	reader := NewReader(t.TempDir())

	_, err := reader.MachineIDs(context.Background())
	assert.ErrorIs(t, err, domain.ErrMissingCatalog)
}

func TestReader_Recipes(t *testing.T) {
	reader := NewReader(exportFixture(t))

	recipes, err := reader.Recipes(context.Background(), "gt.recipe.assembler")
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, 32, recipes[0].EUPerTick)
}

func TestReader_FluidsMissingIsEmpty(t *testing.T) {
	reader := NewReader(t.TempDir())

	fluids, err := reader.Fluids(context.Background())
	require.NoError(t, err)
	assert.Empty(t, fluids)
}

func TestReader_OptionalDatasetsDefaultEmpty(t *testing.T) {
	reader := NewReader(t.TempDir())
	ctx := context.Background()

	materials, err := reader.Materials(ctx)
	require.NoError(t, err)
	assert.Empty(t, materials)

	bees, err := reader.BeeBreeding(ctx)
	require.NoError(t, err)
	require.NotNil(t, bees)
	assert.Empty(t, bees.Mutations)

	bm, err := reader.BloodMagic(ctx)
	require.NoError(t, err)
	require.NotNil(t, bm)
	assert.Empty(t, bm.AltarRecipes)

	veins, err := reader.OreVeins(ctx)
	require.NoError(t, err)
	assert.Empty(t, veins)

	ores, err := reader.SmallOres(ctx)
	require.NoError(t, err)
	assert.Empty(t, ores)
}

func TestReader_OptionalDatasetsWhenPresent(t *testing.T) {
	dir := exportFixture(t)
	writeFile(t, dir, "gt_materials.json", []domain.Material{
		{Name: "Titanium", LocalizedName: "Titanium", MeltingPoint: 1941},
	})
	writeFile(t, dir, "ore_veins.json", []domain.OreVein{
		{Name: "ore.mix.iron", MinY: 10, MaxY: 40},
	})

	reader := NewReader(dir)
	ctx := context.Background()

	materials, err := reader.Materials(ctx)
	require.NoError(t, err)
	require.Len(t, materials, 1)
	assert.Equal(t, 1941, materials[0].MeltingPoint)

	veins, err := reader.OreVeins(ctx)
	require.NoError(t, err)
	require.Len(t, veins, 1)
	assert.Equal(t, "ore.mix.iron", veins[0].Name)
}

func TestReader_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "items.json"), []byte("{not json"), 0o644))

	reader := NewReader(dir)
	_, err := reader.Items(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrMissingCatalog)
}
