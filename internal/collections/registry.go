package collections

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

var ErrCollectionNotFound = errors.New("collection not found")

// Registry maps collection slugs to their configs. Lookups against an
// unknown slug are surfaced as errors so routing bugs fail loudly instead
// of rendering an empty page.
type Registry struct {
	mu      sync.RWMutex
	bySlug  map[string]CollectionConfig
	ordered []string
}

// NewRegistry builds a registry from the given configs, preserving their
// order for listing.
func NewRegistry(configs []CollectionConfig) *Registry {
	r := &Registry{}
	r.replace(configs)
	return r
}

// DefaultRegistry returns a registry holding the built-in collections.
func DefaultRegistry() *Registry {
	return NewRegistry(Defaults())
}

func (r *Registry) replace(configs []CollectionConfig) {
	bySlug := make(map[string]CollectionConfig, len(configs))
	ordered := make([]string, 0, len(configs))
	for _, cfg := range configs {
		if cfg.Slug == "" {
			continue
		}
		if _, exists := bySlug[cfg.Slug]; !exists {
			ordered = append(ordered, cfg.Slug)
		}
		bySlug[cfg.Slug] = cfg
	}

	r.mu.Lock()
	r.bySlug = bySlug
	r.ordered = ordered
	r.mu.Unlock()
}

// Get returns the config for slug.
func (r *Registry) Get(slug string) (CollectionConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cfg, ok := r.bySlug[slug]
	if !ok {
		return CollectionConfig{}, fmt.Errorf("%w: %q", ErrCollectionNotFound, slug)
	}
	return cfg, nil
}

// All returns every config in registration order.
func (r *Registry) All() []CollectionConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	configs := make([]CollectionConfig, 0, len(r.ordered))
	for _, slug := range r.ordered {
		configs = append(configs, r.bySlug[slug])
	}
	return configs
}

// registryFile is the YAML shape of a collections override file.
type registryFile struct {
	Collections []CollectionConfig `yaml:"collections"`
}

// LoadFile replaces the registry contents with the collections defined in
// the YAML file at path.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read collections file: %w", err)
	}

	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse collections file: %w", err)
	}
	if len(file.Collections) == 0 {
		return fmt.Errorf("collections file %s defines no collections", path)
	}
	for i, cfg := range file.Collections {
		if cfg.Slug == "" || cfg.Name == "" {
			return fmt.Errorf("collections file %s: entry %d missing slug or name", path, i)
		}
	}

	r.replace(file.Collections)
	return nil
}

// Watch reloads the registry whenever the collections file changes. It
// blocks until the watcher fails or the stop channel closes; callers run
// it in a goroutine. Reload failures keep the previous contents.
func (r *Registry) Watch(path string, stop <-chan struct{}, onError func(error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	for {
		select {
		case <-stop:
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := r.LoadFile(path); err != nil && onError != nil {
				onError(err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if onError != nil {
				onError(err)
			}
		}
	}
}
