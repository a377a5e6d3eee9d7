package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gregdex/gregdex/internal/core/domain"
)

func TestVersionCmd(t *testing.T) {
	cleanup := setupTestServices(&stubQuery{}, &stubPipeline{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "gregdex version")
}

func TestItemCmd_PrintsDetail(t *testing.T) {
	cleanup := setupTestServices(&stubQuery{
		detail: &domain.ItemDetail{
			Item: domain.Item{
				ID:          "gregtech:gt.metaitem.01:32741",
				ModID:       "gregtech",
				ItemName:    "gt.metaitem.01",
				Metadata:    32741,
				DisplayName: "Iridium Alloy Ingot",
			},
			OutputRecipes: []domain.Recipe{
				{Machine: "gt.recipe.assembler", EUPerTick: 32, Duration: 100},
			},
			TotalOutputRecipes: 4,
			TotalInputRecipes:  0,
		},
	}, &stubPipeline{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"item", "gregtech-gt.metaitem.01-32741"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Iridium Alloy Ingot")
	assert.Contains(t, out, "Produced by: 4 recipes")
	assert.Contains(t, out, "gt.recipe.assembler (32 EU/t, 100 ticks)")
	assert.Contains(t, out, "... and 3 more")
}

func TestItemCmd_NotFound(t *testing.T) {
	cleanup := setupTestServices(&stubQuery{}, &stubPipeline{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"item", "missing-item"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMachinesCmd_List(t *testing.T) {
	cleanup := setupTestServices(&stubQuery{
		machines: []domain.Machine{
			{ID: "gt.recipe.assembler", DisplayName: "Assembler", RecipeCount: 1203, Chunks: 3, Category: "GregTech"},
			{ID: "furnace", DisplayName: "Furnace", RecipeCount: 40, Chunks: 1, Category: "Vanilla"},
		},
	}, &stubPipeline{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"machines"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Assembler")
	assert.Contains(t, out, "[GregTech]")
	assert.Contains(t, out, "Furnace")
}

func TestMachinesCmd_Single(t *testing.T) {
	cleanup := setupTestServices(&stubQuery{
		machines: []domain.Machine{
			{ID: "gt.recipe.assembler", DisplayName: "Assembler", RecipeCount: 1203, Chunks: 3, Category: "GregTech"},
		},
	}, &stubPipeline{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"machines", "gt.recipe.assembler"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "1203 in 3 chunks")
}

func TestFluidsCmd_ListAndSingle(t *testing.T) {
	cleanup := setupTestServices(&stubQuery{
		fluid: &domain.Fluid{Name: "fluid.molten.iron", DisplayName: "Molten Iron"},
		fluids: []domain.Fluid{
			{Name: "fluid.molten.iron", DisplayName: "Molten Iron"},
			{Name: "water", DisplayName: "Water"},
		},
	}, &stubPipeline{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"fluids"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "Water")

	buf.Reset()
	rootCmd.SetArgs([]string{"fluids", "fluid-molten-iron"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "Molten Iron")
}

func TestBuildCmd_PrintsManifestSummary(t *testing.T) {
	cleanup := setupTestServices(&stubQuery{}, &stubPipeline{
		manifest: &domain.Manifest{
			BuildID:  "build-1",
			Items:    3,
			Recipes:  1204,
			Machines: 2,
			Fluids:   2,
		},
	})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"build"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Build build-1 published")
	assert.Contains(t, out, "Recipes:  1204")
}

func TestBuildCmd_SurfacesFailure(t *testing.T) {
	cleanup := setupTestServices(&stubQuery{}, &stubPipeline{
		err: errors.New("export missing"),
	})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"build"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "export missing")
}

func TestConfigCmd_SetAndShow(t *testing.T) {
	cleanup := setupTestServices(&stubQuery{}, &stubPipeline{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "set", "pipeline.chunk_size", "250"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "Set pipeline.chunk_size = 250")

	buf.Reset()
	rootCmd.SetArgs([]string{"config", "show"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "pipeline.chunk_size")
}
