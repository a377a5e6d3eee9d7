package artifacts

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/singleflight"

	"github.com/gregdex/gregdex/internal/core/domain"
	"github.com/gregdex/gregdex/internal/core/ports/driven"
	"github.com/gregdex/gregdex/internal/logger"
)

// Ensure Reader implements the interface.
var _ driven.ArtifactReader = (*Reader)(nil)

// Reader reads the published dataset with a process-lifetime cache.
// Every parsed artifact is kept until a new build replaces the data
// directory; concurrent first reads of the same artifact collapse
// into one load.
type Reader struct {
	dir string

	mu    sync.RWMutex
	cache map[string]any
	group singleflight.Group

	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewReader creates a reader over a data directory and starts watching
// for build replacements. Publish renames the directory itself, so the
// watch is on the parent: a rename or create event on the data
// directory path drops the whole cache. Watch setup failure is not
// fatal, the reader just serves a build-stable cache.
func NewReader(dataDir string) *Reader {
	r := &Reader{
		dir:   dataDir,
		cache: make(map[string]any),
		done:  make(chan struct{}),
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Warn("Dataset watch unavailable: %v", err)
		return r
	}
	if err := watcher.Add(filepath.Dir(dataDir)); err != nil {
		logger.Warn("Dataset watch unavailable: %v", err)
		watcher.Close()
		return r
	}
	r.watcher = watcher
	go r.watch()
	return r
}

// watch drops the cache whenever the data directory is replaced.
func (r *Reader) watch() {
	for {
		select {
		case event, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(r.dir) {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
				logger.Debug("Dataset replaced, dropping artifact cache")
				r.invalidate()
			}
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("Dataset watch error: %v", err)
		case <-r.done:
			return
		}
	}
}

// invalidate drops every cached artifact.
func (r *Reader) invalidate() {
	r.mu.Lock()
	r.cache = make(map[string]any)
	r.mu.Unlock()
}

// Close stops the dataset watch.
func (r *Reader) Close() error {
	if r.watcher == nil {
		return nil
	}
	close(r.done)
	return r.watcher.Close()
}

// Manifest returns the build manifest, ErrNotBuilt if absent.
func (r *Reader) Manifest(ctx context.Context) (*domain.Manifest, error) {
	m, err := readCached[domain.Manifest](r, manifestFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: no manifest at %s", domain.ErrNotBuilt, r.dir)
		}
		return nil, err
	}
	return &m, nil
}

// ItemsIndex returns the ordered items index.
func (r *Reader) ItemsIndex(ctx context.Context) ([]domain.ItemSummary, error) {
	return readRequired[[]domain.ItemSummary](r, itemsIndexFile)
}

// Item returns one item record by encoded id, ErrNotFound if absent.
func (r *Reader) Item(ctx context.Context, encodedID string) (*domain.Item, error) {
	item, err := readCached[domain.Item](r, itemPath(encodedID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("item %s: %w", encodedID, domain.ErrNotFound)
		}
		return nil, err
	}
	return &item, nil
}

// ItemsByMod returns the mod id to item list mapping.
func (r *Reader) ItemsByMod(ctx context.Context) (map[string][]domain.ModItem, error) {
	return readRequired[map[string][]domain.ModItem](r, filepath.Join(searchDir, itemsByModFile))
}

// Machines returns the machine index.
func (r *Reader) Machines(ctx context.Context) ([]domain.Machine, error) {
	return readRequired[[]domain.Machine](r, machinesFile)
}

// RecipeChunk returns one recipe chunk. An absent chunk file yields
// an empty list so a drifted reference degrades instead of failing.
func (r *Reader) RecipeChunk(
	ctx context.Context, machineID string, chunk int,
) ([]domain.Recipe, error) {
	recipes, err := readCached[[]domain.Recipe](r, chunkPath(machineID, chunk))
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Recipe{}, nil
		}
		return nil, err
	}
	return recipes, nil
}

// FluidsIndex returns the ordered fluids index.
func (r *Reader) FluidsIndex(ctx context.Context) ([]domain.Fluid, error) {
	return readRequired[[]domain.Fluid](r, fluidsIndexFile)
}

// TrigramIndex returns the trigram posting lists.
func (r *Reader) TrigramIndex(ctx context.Context) (map[string][]int, error) {
	return readRequired[map[string][]int](r, filepath.Join(searchDir, trigramsFile))
}

// Materials returns the material records.
func (r *Reader) Materials(ctx context.Context) ([]domain.Material, error) {
	return readRequired[[]domain.Material](r, materialsFile)
}

// BeeMutations returns the bee mutation list.
func (r *Reader) BeeMutations(ctx context.Context) ([]domain.BeeMutation, error) {
	return readRequired[[]domain.BeeMutation](r, beeMutationsFile)
}

// BeeSpecies returns the bee species list.
func (r *Reader) BeeSpecies(ctx context.Context) ([]domain.BeeSpecies, error) {
	return readRequired[[]domain.BeeSpecies](r, beeSpeciesFile)
}

// OreVeins returns the ore vein list.
func (r *Reader) OreVeins(ctx context.Context) ([]domain.OreVein, error) {
	return readRequired[[]domain.OreVein](r, oreVeinsFile)
}

// SmallOres returns the small ore list.
func (r *Reader) SmallOres(ctx context.Context) ([]domain.SmallOre, error) {
	return readRequired[[]domain.SmallOre](r, smallOresFile)
}

// BloodMagic returns the blood magic collections.
func (r *Reader) BloodMagic(ctx context.Context) (*domain.BloodMagic, error) {
	bm, err := readCached[domain.BloodMagic](r, bloodMagicFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: no blood magic data at %s", domain.ErrNotBuilt, r.dir)
		}
		return nil, err
	}
	return &bm, nil
}

// readRequired reads a cached artifact whose absence means the
// dataset was never built.
func readRequired[T any](r *Reader, rel string) (T, error) {
	v, err := readCached[T](r, rel)
	if err != nil && os.IsNotExist(err) {
		var zero T
		return zero, fmt.Errorf("%w: missing %s", domain.ErrNotBuilt, rel)
	}
	return v, err
}

// readCached reads and parses one artifact, serving repeat reads from
// the cache. Concurrent first reads collapse into one file load via
// singleflight. A missing file surfaces the raw os error so callers
// can map absence per artifact.
func readCached[T any](r *Reader, rel string) (T, error) {
	r.mu.RLock()
	cached, ok := r.cache[rel]
	r.mu.RUnlock()
	if ok {
		return cached.(T), nil
	}

	v, err, _ := r.group.Do(rel, func() (any, error) {
		data, err := os.ReadFile(filepath.Join(r.dir, rel))
		if err != nil {
			if os.IsNotExist(err) {
				return nil, err
			}
			return nil, fmt.Errorf("reading %s: %w", rel, err)
		}
		var parsed T
		if err := json.Unmarshal(data, &parsed); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", rel, err)
		}

		r.mu.Lock()
		r.cache[rel] = parsed
		r.mu.Unlock()
		return parsed, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
