package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gregdex/gregdex/internal/core/domain"
)

var itemJSON bool

var itemCmd = &cobra.Command{
	Use:   "item [id]",
	Short: "Show one item and its recipes",
	Long: `Resolves an item by its encoded or readable identifier and prints
its record with the first referenced recipes in each direction.`,
	Args: cobra.ExactArgs(1),
	RunE: runItem,
}

func init() {
	itemCmd.Flags().BoolVar(&itemJSON, "json", false, "output the item as JSON")
	rootCmd.AddCommand(itemCmd)
}

func runItem(cmd *cobra.Command, args []string) error {
	if err := ensureQueryService(); err != nil {
		return err
	}
	if queryService == nil {
		return errors.New("query service not configured")
	}

	detail, err := queryService.Item(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("item lookup failed: %w", err)
	}

	if itemJSON {
		data, err := json.MarshalIndent(detail, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling item: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	item := &detail.Item
	cmd.Printf("%s\n", item.DisplayName)
	cmd.Printf("  ID:       %s\n", item.ID)
	cmd.Printf("  Mod:      %s\n", item.ModID)
	cmd.Printf("  Name:     %s:%d\n", item.ItemName, item.Metadata)
	if len(item.OreDictNames) > 0 {
		cmd.Printf("  OreDict:  %s\n", strings.Join(item.OreDictNames, ", "))
	}
	cmd.Println()

	printRecipes(cmd, "Produced by", detail.OutputRecipes, detail.TotalOutputRecipes)
	printRecipes(cmd, "Used in", detail.InputRecipes, detail.TotalInputRecipes)
	return nil
}

func printRecipes(cmd *cobra.Command, heading string, recipes []domain.Recipe, total int) {
	cmd.Printf("%s: %d recipes\n", heading, total)
	for i := range recipes {
		r := &recipes[i]
		switch r.Shape() {
		case domain.ShapeCrafting:
			cmd.Printf("  [%d] %s (%dx%d grid)\n", i+1, r.Machine, r.GridWidth, r.GridHeight)
		case domain.ShapeThaumcraft:
			cmd.Printf("  [%d] %s (research: %s)\n", i+1, r.Machine, r.Research)
		default:
			cmd.Printf("  [%d] %s (%d EU/t, %d ticks)\n", i+1, r.Machine, r.EUPerTick, r.Duration)
		}
	}
	if total > len(recipes) {
		cmd.Printf("  ... and %d more\n", total-len(recipes))
	}
	cmd.Println()
}
