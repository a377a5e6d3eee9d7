package domain

import "time"

// Manifest describes one published dataset build. The build id
// changes on every pipeline run, so readers can use it as a cache
// generation key: a new id means every cached artifact is stale.
type Manifest struct {
	// BuildID uniquely identifies this build.
	BuildID string `json:"buildId"`

	// BuiltAt is when the pipeline run finished.
	BuiltAt time.Time `json:"builtAt"`

	// ChunkSize is the recipe chunk size this dataset was built with.
	// Readers must use the same value when interpreting RecipeRefs.
	ChunkSize int `json:"chunkSize"`

	// Items is the number of items indexed.
	Items int `json:"items"`

	// Recipes is the total recipe count across all machines.
	Recipes int `json:"recipes"`

	// Machines is the number of machines.
	Machines int `json:"machines"`

	// Fluids is the number of fluids.
	Fluids int `json:"fluids"`
}
