package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gregdex/gregdex/internal/adapters/driven/artifacts"
	"github.com/gregdex/gregdex/internal/adapters/driven/config/file"
	"github.com/gregdex/gregdex/internal/adapters/driven/export"
	"github.com/gregdex/gregdex/internal/core/services"
)

var (
	buildExportDir string
	buildChunkSize int
	buildWorkers   int
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the dataset from a raw export",
	Long: `Processes a raw game-data export into the published dataset:
normalized machine records, chunked recipe files, per-item recipe
cross-references and the search indexes. The new build replaces the
previous one atomically.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&buildExportDir, "export-dir", "", "raw export directory (default from config, then ./export)")
	buildCmd.Flags().IntVar(&buildChunkSize, "chunk-size", 0, "recipes per chunk file (default 500)")
	buildCmd.Flags().IntVar(&buildWorkers, "workers", 0, "concurrent machine workers (default number of CPUs)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	if pipelineService == nil {
		if err := wirePipeline(); err != nil {
			return err
		}
	}
	if pipelineService == nil {
		return errors.New("pipeline service not configured")
	}

	start := time.Now()
	manifest, err := pipelineService.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	cmd.Printf("Build %s published in %s\n", manifest.BuildID, time.Since(start).Round(time.Millisecond))
	cmd.Printf("  Items:    %d\n", manifest.Items)
	cmd.Printf("  Recipes:  %d\n", manifest.Recipes)
	cmd.Printf("  Machines: %d\n", manifest.Machines)
	cmd.Printf("  Fluids:   %d\n", manifest.Fluids)
	return nil
}

// wirePipeline constructs the real pipeline from configuration.
func wirePipeline() error {
	exportDir := buildExportDir
	if exportDir == "" {
		exportDir = configStore.GetString(file.KeyExportDir)
	}
	if exportDir == "" {
		exportDir = "export"
	}

	chunkSize := buildChunkSize
	if chunkSize == 0 {
		chunkSize = configStore.GetInt(file.KeyChunkSize)
	}

	dir, err := dataDir()
	if err != nil {
		return err
	}

	var writerOpts []artifacts.WriterOption
	var pipelineOpts []services.PipelineOption
	if chunkSize > 0 {
		writerOpts = append(writerOpts, artifacts.WithChunkSize(chunkSize))
		pipelineOpts = append(pipelineOpts, services.WithChunkSize(chunkSize))
	}
	if buildWorkers > 0 {
		pipelineOpts = append(pipelineOpts, services.WithWorkers(buildWorkers))
	}

	writer, err := artifacts.NewWriter(dir, writerOpts...)
	if err != nil {
		return fmt.Errorf("preparing staging area: %w", err)
	}

	pipelineService = services.NewPipelineService(export.NewReader(exportDir), writer, pipelineOpts...)
	return nil
}
