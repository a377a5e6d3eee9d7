// Package artifacts persists and reads the processed dataset: the
// chunked recipe store, the item and fluid catalogs, the search
// indexes and the auxiliary collections, all as JSON files under one
// data directory.
//
// The writer stages everything and publishes with an atomic rename;
// the reader caches every parsed file for the life of the process and
// drops the cache when a new build replaces the data directory.
package artifacts

import (
	"fmt"
	"path/filepath"
)

// Artifact layout, relative to the data directory.
const (
	manifestFile     = "manifest.json"
	itemsIndexFile   = "items-index.json"
	fluidsIndexFile  = "fluids-index.json"
	machinesFile     = "machines.json"
	materialsFile    = "materials.json"
	beeMutationsFile = "bee-mutations.json"
	beeSpeciesFile   = "bee-species.json"
	oreVeinsFile     = "ore-veins.json"
	smallOresFile    = "small-ores.json"
	bloodMagicFile   = "blood-magic.json"

	itemsDir   = "items"
	fluidsDir  = "fluids"
	recipesDir = "recipes"
	searchDir  = "search"

	trigramsFile   = "items-trigrams.json"
	itemsByModFile = "items-by-mod.json"
)

// itemPath returns the per-item file path for an encoded id.
func itemPath(encodedID string) string {
	return filepath.Join(itemsDir, encodedID+".json")
}

// fluidPath returns the per-fluid file path.
func fluidPath(name string) string {
	return filepath.Join(fluidsDir, name+".json")
}

// chunkPath returns the chunk file path for (machine, chunk).
func chunkPath(machineID string, chunk int) string {
	return filepath.Join(recipesDir, machineID, fmt.Sprintf("chunk-%d.json", chunk))
}
