package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var machinesJSON bool

var machinesCmd = &cobra.Command{
	Use:   "machines [id]",
	Short: "List machines or show one machine",
	Long: `Without an argument, lists every machine sorted by recipe count.
With a machine identifier, shows that machine's record.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMachines,
}

func init() {
	machinesCmd.Flags().BoolVar(&machinesJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(machinesCmd)
}

func runMachines(cmd *cobra.Command, args []string) error {
	if err := ensureQueryService(); err != nil {
		return err
	}
	if queryService == nil {
		return errors.New("query service not configured")
	}

	if len(args) == 1 {
		machine, err := queryService.Machine(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("machine lookup failed: %w", err)
		}
		if machinesJSON {
			return printJSON(cmd, machine)
		}
		cmd.Printf("%s\n", machine.DisplayName)
		cmd.Printf("  ID:       %s\n", machine.ID)
		cmd.Printf("  Category: %s\n", machine.Category)
		cmd.Printf("  Recipes:  %d in %d chunks\n", machine.RecipeCount, machine.Chunks)
		return nil
	}

	machines, err := queryService.Machines(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing machines failed: %w", err)
	}
	if machinesJSON {
		return printJSON(cmd, machines)
	}

	for i := range machines {
		m := &machines[i]
		cmd.Printf("%-40s %8d recipes  [%s]\n", m.DisplayName, m.RecipeCount, m.Category)
	}
	return nil
}

// printJSON writes any value as indented JSON to the command output.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
