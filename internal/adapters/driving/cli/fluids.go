package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var fluidsJSON bool

var fluidsCmd = &cobra.Command{
	Use:   "fluids [id]",
	Short: "List fluids or show one fluid",
	Long: `Without an argument, lists the fluid index. With a fluid
identifier (raw dot-delimited or readable hyphenated), shows that
fluid's record.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFluids,
}

func init() {
	fluidsCmd.Flags().BoolVar(&fluidsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(fluidsCmd)
}

func runFluids(cmd *cobra.Command, args []string) error {
	if err := ensureQueryService(); err != nil {
		return err
	}
	if queryService == nil {
		return errors.New("query service not configured")
	}

	if len(args) == 1 {
		fluid, err := queryService.Fluid(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("fluid lookup failed: %w", err)
		}
		if fluidsJSON {
			return printJSON(cmd, fluid)
		}
		cmd.Printf("%s\n", fluid.DisplayName)
		cmd.Printf("  Name: %s\n", fluid.Name)
		return nil
	}

	fluids, err := queryService.Fluids(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing fluids failed: %w", err)
	}
	if fluidsJSON {
		return printJSON(cmd, fluids)
	}

	for i := range fluids {
		cmd.Printf("%-40s %s\n", fluids[i].DisplayName, fluids[i].Name)
	}
	return nil
}
