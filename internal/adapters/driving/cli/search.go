package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gregdex/gregdex/internal/core/domain"
)

var (
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search items and fluids by name",
	Long: `Performs fuzzy search over item and fluid display names.
Items are matched by trigram overlap with exact, prefix and substring
boosts; fluids by substring. Queries shorter than two characters
return nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (default 15)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if err := ensureQueryService(); err != nil {
		return err
	}
	if queryService == nil {
		return errors.New("query service not configured")
	}

	results, err := queryService.Search(cmd.Context(), args[0], searchLimit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling results: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		r := &results[i]
		switch r.Type {
		case domain.ResultTypeFluid:
			cmd.Printf("  [%d] %s (fluid, %d)\n", i+1, r.DisplayName, r.Score)
			cmd.Printf("      %s\n", r.ID)
		default:
			cmd.Printf("  [%d] %s (%d)\n", i+1, r.DisplayName, r.Score)
			if r.ModID != "" {
				cmd.Printf("      Mod: %s\n", r.ModID)
			}
			cmd.Printf("      %s\n", domain.ReadableItemID(r.ID))
		}
		cmd.Println()
	}
	return nil
}
