// Package domain defines the core business entities for Gregdex.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Item: A game item with its recipe cross-references
//   - Recipe: A single recipe belonging to one machine
//   - RecipeRef: A weak reference locating a recipe inside a chunk
//   - Machine: A recipe source with derived name and category
//   - Fluid: A fluid with its own identifier namespace
//   - Manifest: Metadata describing one published dataset build
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
package domain
