package schema

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// definitionFilePattern selects directory entries treated as schema
// definition documents. Everything else is skipped.
const definitionFilePattern = "*.{yaml,yml}"

// LoadFromDir merges externally authored definitions from a directory of
// YAML definition files into the registry. Only direct entries are
// considered; subdirectories are not recursed into. A missing directory is
// not an error and yields a count of zero.
//
// The load is whole-batch-fails with staged commit: every candidate file is
// parsed first, and definitions reach the registry only after all of them
// succeeded. A malformed or unreadable file therefore aborts the call with
// the registry untouched. When several files define the same id, the file
// processed last wins; traversal order is filesystem-dependent and
// deliberately unspecified.
func (r *Registry) LoadFromDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("reading schema directory %q: %w", dir, err)
	}

	var staged []Definition
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if matched, _ := doublestar.Match(definitionFilePattern, entry.Name()); !matched {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return 0, fmt.Errorf("reading schema definition %q: %w", path, err)
		}

		def, err := DecodeDefinition(data)
		if err != nil {
			return 0, &MalformedDefinitionError{Path: path, Err: err}
		}
		staged = append(staged, def)
	}

	r.mu.Lock()
	for _, def := range staged {
		r.schemas[def.ID] = def
	}
	r.mu.Unlock()

	r.logger.Debug("schema definitions loaded", "dir", dir, "count", len(staged))
	return len(staged), nil
}
