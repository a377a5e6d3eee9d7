package cli

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gregdex/gregdex/internal/adapters/driven/config/file"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and set configuration values.

Recognized keys:
  export.dir            raw export directory used by build
  data.dir              published dataset directory
  pipeline.chunk_size   recipes per chunk file
  search.default_limit  default search result cap`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if configStore == nil {
			return errors.New("config store not configured")
		}
		cmd.Println(configStore.Path())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	keys := []string{file.KeyExportDir, file.KeyDataDir, file.KeyChunkSize, file.KeyDefaultLimit}
	for _, key := range keys {
		val, ok := configStore.Get(key)
		if !ok {
			cmd.Printf("%-22s (not set)\n", key)
			continue
		}
		cmd.Printf("%-22s %v\n", key, val)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, raw := args[0], args[1]

	// Integer keys are stored as integers so GetInt works on readback.
	var value any = raw
	if n, err := strconv.Atoi(raw); err == nil {
		value = int64(n)
	}

	if err := configStore.Set(key, value); err != nil {
		return err
	}
	cmd.Printf("Set %s = %s\n", key, raw)
	return nil
}
