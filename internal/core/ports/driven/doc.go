// Package driven defines the interfaces that core calls OUT to
// infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal
// architecture. Core services depend on these interfaces, and
// infrastructure adapters implement them.
//
//   - ExportReader: reads the raw game-data export
//   - ArtifactWriter: stages and publishes the processed dataset
//   - ArtifactReader: cached read access to the published dataset
//   - ConfigStore: application configuration
package driven
