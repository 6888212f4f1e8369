package schema_test

import (
	"path/filepath"
	"testing"

	"github.com/Hyperpolymath/conflow/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinition_RoundTrip(t *testing.T) {
	t.Parallel()

	defs := []schema.Definition{
		{
			ID:          "proj:inline",
			Kind:        schema.KindCUE,
			Name:        "Inline Schema",
			Description: "round trip with inline content",
			Source:      schema.InlineSource{Content: "#App: {name: string}\n"},
			Version:     "1.2.3",
			Tags:        []string{"app", "test"},
		},
		{
			ID:      "proj:path",
			Kind:    schema.KindJSONSchema,
			Name:    "Path Schema",
			Source:  schema.PathSource{Path: "/etc/schemas/app.json"},
			Version: "0.1.0",
		},
		{
			ID:      "proj:url",
			Kind:    schema.KindNickel,
			Name:    "URL Schema",
			Source:  schema.URLSource{URL: "https://example.com/app.ncl"},
			Version: "2.0.0",
			Tags:    []string{"remote"},
		},
	}

	for _, def := range defs {
		t.Run(def.ID, func(t *testing.T) {
			// Registered definitions survive the directory-file encoding: a
			// fresh registry loading the serialized form observes the same
			// definition.
			src := schema.New()
			src.Register(def)
			registered, ok := src.Get(def.ID)
			require.True(t, ok)

			data, err := schema.MarshalDefinition(registered)
			require.NoError(t, err)

			dir := t.TempDir()
			writeDefinitionFile(t, dir, "def.yaml", string(data))

			dst := schema.New()
			count, err := dst.LoadFromDir(dir)
			require.NoError(t, err)
			require.Equal(t, 1, count)

			reloaded, ok := dst.Get(def.ID)
			require.True(t, ok)
			assert.Equal(t, registered, reloaded)
		})
	}
}

func TestDefinition_RoundTripContent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "app.cue")
	writeDefinitionFile(t, dir, "app.cue", "#App: {replicas: int}\n")

	def := schema.Definition{
		ID:      "proj:ondisk",
		Kind:    schema.KindCUE,
		Name:    "On Disk",
		Source:  schema.PathSource{Path: schemaPath},
		Version: "1.0.0",
	}

	src := schema.New()
	src.Register(def)
	want, err := src.GetContent(def.ID)
	require.NoError(t, err)

	data, err := schema.MarshalDefinition(def)
	require.NoError(t, err)

	defDir := t.TempDir()
	writeDefinitionFile(t, defDir, "ondisk.yaml", string(data))

	dst := schema.New()
	_, err = dst.LoadFromDir(defDir)
	require.NoError(t, err)

	got, err := dst.GetContent(def.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDecodeDefinition(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		def, err := schema.DecodeDefinition([]byte(validAppDefinition))
		require.NoError(t, err)
		assert.Equal(t, "proj:app", def.ID)
		assert.Equal(t, schema.KindCUE, def.Kind)
		assert.Equal(t, schema.InlineSource{Content: "#App: {name: string}"}, def.Source)
	})

	t.Run("missing required field", func(t *testing.T) {
		_, err := schema.DecodeDefinition([]byte(`id: proj:x
kind: cue
source:
  content: "x"
version: 1.0.0
`))
		require.Error(t, err)
		assert.ErrorContains(t, err, "invalid definition document")
	})

	t.Run("empty source", func(t *testing.T) {
		_, err := schema.DecodeDefinition([]byte(`id: proj:x
kind: cue
name: X
source: {}
version: 1.0.0
`))
		require.Error(t, err)
		assert.ErrorContains(t, err, "exactly one")
	})

	t.Run("wrong type for field", func(t *testing.T) {
		_, err := schema.DecodeDefinition([]byte(`id: proj:x
kind: cue
name: X
source:
  content: "x"
version: 1.0.0
tags: not-a-list
`))
		require.Error(t, err)
	})
}

func TestMarshalDefinition_UnknownSource(t *testing.T) {
	t.Parallel()

	_, err := schema.MarshalDefinition(schema.Definition{
		ID:      "proj:nil",
		Kind:    schema.KindCUE,
		Name:    "Nil Source",
		Version: "1.0.0",
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "unknown schema source")
}
