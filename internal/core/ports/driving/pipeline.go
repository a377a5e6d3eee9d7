package driving

import (
	"context"

	"github.com/gregdex/gregdex/internal/core/domain"
)

// PipelineService runs the offline ingestion pipeline: it transforms
// a raw export into the partitioned, indexed dataset.
type PipelineService interface {
	// Run executes one full pipeline pass and publishes the result
	// atomically. Returns the manifest of the published build.
	// Pipeline failures are fatal for the run; the previously
	// published dataset is left intact.
	Run(ctx context.Context) (*domain.Manifest, error)
}
