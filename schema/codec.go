package schema

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/goccy/go-yaml"
	invopop "github.com/invopop/jsonschema"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// definitionDoc is the on-disk YAML shape of a Definition, the format
// consumed by LoadFromDir and produced by MarshalDefinition.
type definitionDoc struct {
	ID          string    `json:"id"          yaml:"id"          jsonschema:"minLength=1"`
	Kind        string    `json:"kind"        yaml:"kind"        jsonschema:"enum=cue,enum=jsonschema,enum=nickel"`
	Name        string    `json:"name"        yaml:"name"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Source      sourceDoc `json:"source"      yaml:"source"`
	Version     string    `json:"version"     yaml:"version"     jsonschema:"minLength=1"`
	Tags        []string  `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// sourceDoc is the untagged source encoding: exactly one of content, path or
// url is set. The generated document schema cannot express exactly-one, so
// toSource enforces it after decoding.
type sourceDoc struct {
	Content *string `json:"content,omitempty" yaml:"content,omitempty"`
	Path    *string `json:"path,omitempty"    yaml:"path,omitempty"`
	URL     *string `json:"url,omitempty"     yaml:"url,omitempty"`
}

// docSchema compiles the definition document schema once. The schema is
// reflected from definitionDoc, so the codec and its validation rules cannot
// drift apart. Unknown fields are rejected: the reflector emits
// additionalProperties: false for every object.
var docSchema = sync.OnceValue(compileDocSchema)

func compileDocSchema() *jsonschema.Schema {
	reflector := new(invopop.Reflector)
	reflector.ExpandedStruct = true
	reflector.DoNotReference = true

	raw, err := json.Marshal(reflector.Reflect(&definitionDoc{}))
	if err != nil {
		panic("schema: marshaling definition document schema: " + err.Error())
	}

	compiled, err := jsonschema.CompileString("conflow://schema-definition.json", string(raw))
	if err != nil {
		panic("schema: compiling definition document schema: " + err.Error())
	}
	return compiled
}

// DecodeDefinition parses a single definition document. The document is
// validated against the generated schema before decoding, so malformed or
// unknown fields fail with a precise cause instead of being silently
// dropped.
func DecodeDefinition(data []byte) (Definition, error) {
	var loose any
	if err := yaml.Unmarshal(data, &loose); err != nil {
		return Definition{}, fmt.Errorf("parsing definition YAML: %w", err)
	}

	if err := docSchema().Validate(loose); err != nil {
		return Definition{}, fmt.Errorf("invalid definition document: %w", err)
	}

	var doc definitionDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Definition{}, fmt.Errorf("decoding definition: %w", err)
	}
	return doc.toDefinition()
}

// MarshalDefinition encodes a definition in the directory-file format
// understood by LoadFromDir.
func MarshalDefinition(def Definition) ([]byte, error) {
	doc, err := fromDefinition(def)
	if err != nil {
		return nil, err
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding definition %q: %w", def.ID, err)
	}
	return data, nil
}

func (doc definitionDoc) toDefinition() (Definition, error) {
	src, err := doc.Source.toSource()
	if err != nil {
		return Definition{}, fmt.Errorf("definition %q: %w", doc.ID, err)
	}

	// Versions are stored verbatim but definition files must at least be
	// semver-shaped, matching what the built-in catalog carries.
	if _, err := semver.NewVersion(doc.Version); err != nil {
		return Definition{}, fmt.Errorf("definition %q: version %q is not semver-shaped: %w", doc.ID, doc.Version, err)
	}

	return Definition{
		ID:          doc.ID,
		Kind:        Kind(doc.Kind),
		Name:        doc.Name,
		Description: doc.Description,
		Source:      src,
		Version:     doc.Version,
		Tags:        doc.Tags,
	}, nil
}

func fromDefinition(def Definition) (definitionDoc, error) {
	doc := definitionDoc{
		ID:          def.ID,
		Kind:        string(def.Kind),
		Name:        def.Name,
		Description: def.Description,
		Version:     def.Version,
		Tags:        def.Tags,
	}

	switch s := def.Source.(type) {
	case InlineSource:
		doc.Source.Content = &s.Content
	case PathSource:
		doc.Source.Path = &s.Path
	case URLSource:
		doc.Source.URL = &s.URL
	default:
		return definitionDoc{}, fmt.Errorf("definition %q: unknown schema source type %T", def.ID, def.Source)
	}
	return doc, nil
}

func (s sourceDoc) toSource() (Source, error) {
	var populated int
	for _, field := range []*string{s.Content, s.Path, s.URL} {
		if field != nil {
			populated++
		}
	}
	if populated != 1 {
		return nil, fmt.Errorf("source must set exactly one of content, path or url (got %d)", populated)
	}

	switch {
	case s.Content != nil:
		return InlineSource{Content: *s.Content}, nil
	case s.Path != nil:
		return PathSource{Path: *s.Path}, nil
	default:
		return URLSource{URL: *s.URL}, nil
	}
}
