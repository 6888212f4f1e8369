// Package schema implements the conflow schema registry. The registry owns,
// indexes and resolves every validation schema the orchestrator works with:
// a compiled-in catalog of defaults plus any definitions a project registers
// on top of them.
package schema

// Kind identifies which validation language a schema targets. The registry
// carries it as metadata only and never branches on it.
type Kind string

const (
	// KindCUE marks a CUE schema.
	KindCUE Kind = "cue"
	// KindJSONSchema marks a JSON Schema document.
	KindJSONSchema Kind = "jsonschema"
	// KindNickel marks a Nickel contract.
	KindNickel Kind = "nickel"
)

// Source describes where a schema's content lives. It is a closed variant:
// the only implementations are InlineSource, PathSource and URLSource, and
// resolution happens at a single point inside the registry.
type Source interface {
	isSource()
}

// InlineSource carries the schema body itself. Resolution never touches the
// filesystem.
type InlineSource struct {
	Content string
}

// PathSource points at a schema file on disk. The file is re-read on every
// resolution, so content is always fresh relative to disk state.
type PathSource struct {
	Path string
}

// URLSource names a remotely hosted schema. Fetching is not implemented;
// resolving one always fails with an UnsupportedSourceError so that a
// missing feature can never masquerade as an empty schema.
type URLSource struct {
	URL string
}

func (InlineSource) isSource() {}
func (PathSource) isSource()   {}
func (URLSource) isSource()    {}

// Definition describes one schema known to the registry: identity, encoding,
// where the content comes from and discovery metadata. The ID is the sole
// storage key; registering a definition under an existing ID replaces the
// previous definition in full.
type Definition struct {
	// ID is the stable, globally unique key (e.g. "rsr:pipeline").
	ID string

	// Kind is the validation language the schema targets.
	Kind Kind

	// Name is a short human readable title.
	Name string

	// Description explains what the schema validates.
	Description string

	// Source is where the schema content comes from.
	Source Source

	// Version is semantic-version-shaped. The registry stores it verbatim
	// and attaches no ordering semantics to it.
	Version string

	// Tags are free-form labels used for discovery. Order is irrelevant for
	// filtering and duplicates are tolerated.
	Tags []string
}

// HasTag reports whether the definition carries an exact, case-sensitive tag.
func (d Definition) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// clone returns an owned copy safe to hand out of the registry.
func (d Definition) clone() Definition {
	if d.Tags != nil {
		d.Tags = append([]string(nil), d.Tags...)
	}
	return d
}
