// Package cli implements the gregdex command-line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gregdex/gregdex/internal/adapters/driven/artifacts"
	"github.com/gregdex/gregdex/internal/adapters/driven/config/file"
	"github.com/gregdex/gregdex/internal/core/ports/driven"
	"github.com/gregdex/gregdex/internal/core/ports/driving"
	"github.com/gregdex/gregdex/internal/core/services"
	"github.com/gregdex/gregdex/internal/logger"
)

// version is set by Execute from the build's main package.
var version = "dev"

// Persistent flags.
var (
	flagVerbose   bool
	flagConfigDir string
	flagDataDir   string
)

// Wired services. Tests inject fakes here; commands construct the
// real ones lazily from configuration.
var (
	configStore     driven.ConfigStore
	queryService    driving.QueryService
	pipelineService driving.PipelineService
	artifactReader  *artifacts.Reader
)

var rootCmd = &cobra.Command{
	Use:   "gregdex",
	Short: "GregTech modpack recipe database",
	Long: `Gregdex builds and queries a recipe reference database from a raw
game-data export: items, fluids, machines and their recipes, with
fuzzy search over display names.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)
		return ensureConfig()
	},
	PersistentPostRun: func(cmd *cobra.Command, _ []string) {
		if artifactReader != nil {
			artifactReader.Close() //nolint:errcheck // Best-effort shutdown
			artifactReader = nil
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default ~/.gregdex)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "dataset directory (default ~/.gregdex/data)")
}

// Execute runs the root command with the given build version.
func Execute(v string) error {
	if v != "" {
		version = v
	}
	return rootCmd.Execute()
}

// ensureConfig loads the configuration store once.
func ensureConfig() error {
	if configStore != nil {
		return nil
	}
	store, err := file.NewConfigStore(flagConfigDir)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	configStore = store
	return nil
}

// dataDir resolves the dataset directory: flag, then config, then
// the default under the user's home.
func dataDir() (string, error) {
	if flagDataDir != "" {
		return flagDataDir, nil
	}
	if dir := configStore.GetString(file.KeyDataDir); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving data directory: %w", err)
	}
	return filepath.Join(home, ".gregdex", "data"), nil
}

// ensureQueryService constructs the query service over the published
// dataset on first use.
func ensureQueryService() error {
	if queryService != nil {
		return nil
	}
	dir, err := dataDir()
	if err != nil {
		return err
	}

	var opts []services.QueryOption
	if limit := configStore.GetInt(file.KeyDefaultLimit); limit > 0 {
		opts = append(opts, services.WithDefaultLimit(limit))
	}

	artifactReader = artifacts.NewReader(dir)
	queryService = services.NewQueryService(artifactReader, opts...)
	return nil
}
