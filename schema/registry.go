package schema

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Registry is the central schema store. It maps identifiers to definitions,
// seeded with the built-in catalog at construction, and may grow or have
// entries overwritten for the lifetime of the process. There is no deletion.
//
// The registry is safe for concurrent use: registrations take the write
// lock, lookups a read lock. Every accessor returns owned copies, never
// views into the internal map.
type Registry struct {
	mu       sync.RWMutex
	schemas  map[string]Definition
	cacheDir string
	logger   *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithCacheDir records dir as a hint for future cache placement. No
// operation reads or writes the directory.
func WithCacheDir(dir string) Option {
	return func(r *Registry) { r.cacheDir = dir }
}

// WithLogger sets the logger used for load and materialization diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) { r.logger = logger }
}

// New creates a registry containing exactly the built-in catalog.
// It performs no I/O.
func New(opts ...Option) *Registry {
	r := &Registry{
		schemas: make(map[string]Definition, len(builtins)),
		logger:  slog.Default(),
	}
	for _, def := range builtins {
		r.schemas[def.ID] = def
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Get returns the definition registered under id. Absence is a normal
// outcome, reported through ok, not an error.
func (r *Registry) Get(id string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.schemas[id]
	if !ok {
		return Definition{}, false
	}
	return def.clone(), true
}

// GetContent looks up id and resolves its source to schema text. This is
// the single contract consumers use to obtain schema bytes, so that source
// resolution failure semantics stay centralized.
func (r *Registry) GetContent(id string) (string, error) {
	r.mu.RLock()
	def, ok := r.schemas[id]
	r.mu.RUnlock()

	if !ok {
		return "", &NotFoundError{ID: id, Help: "register it or check the id"}
	}
	return resolve(def.Source)
}

// List returns every currently stored definition. Order is not guaranteed.
func (r *Registry) List() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]Definition, 0, len(r.schemas))
	for _, def := range r.schemas {
		defs = append(defs, def.clone())
	}
	return defs
}

// ByTag returns every definition whose tag set contains an exact,
// case-sensitive match for tag. No match yields an empty slice, not an
// error.
func (r *Registry) ByTag(tag string) []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var defs []Definition
	for _, def := range r.schemas {
		if def.HasTag(tag) {
			defs = append(defs, def.clone())
		}
	}
	return defs
}

// Register inserts or overwrites def by its ID. It never fails and performs
// no consistency validation: a PathSource pointing nowhere is accepted and
// surfaces from GetContent instead.
func (r *Registry) Register(def Definition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schemas[def.ID] = def.clone()
}

// CacheDir returns the cache placement hint, empty when unset.
func (r *Registry) CacheDir() string {
	return r.cacheDir
}

// WriteToFile resolves the schema's content and materializes it at path for
// an external validator process to consume. Missing parent directories are
// created; an existing file at path is overwritten.
func (r *Registry) WriteToFile(id, path string) error {
	content, err := r.GetContent(id)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("creating directory %q: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing schema %q to %q: %w", id, path, err)
	}

	r.logger.Debug("schema materialized", "id", id, "path", path)
	return nil
}

// resolve is the single point a Source is turned into schema text.
func resolve(src Source) (string, error) {
	switch s := src.(type) {
	case InlineSource:
		return s.Content, nil
	case PathSource:
		data, err := os.ReadFile(s.Path)
		if err != nil {
			return "", fmt.Errorf("reading schema file %q: %w", s.Path, err)
		}
		return string(data), nil
	case URLSource:
		return "", &UnsupportedSourceError{URL: s.URL}
	default:
		return "", fmt.Errorf("unknown schema source type %T", src)
	}
}
