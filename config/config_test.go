package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BMBF-ARVIDA/arivda-preprocessor/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{
			name: "minimal valid config",
			cfg:  Default("http://example.com"),
		},
		{
			name: "full valid config",
			cfg: &Config{
				Prefixes:   map[string]string{"spatial": "http://vocab.arvida.de/2015/06/spatial/vocab#"},
				BaseURI:    "http://example.com",
				RootPath:   "http://example.com/run1",
				Dispatch:   DispatchTable,
				PartialRun: true,
				Hooks:      Hooks{Prolog: "// generated", Includes: []string{"common.h"}},
			},
		},
		{
			name:    "nil config",
			cfg:     nil,
			wantErr: true,
		},
		{
			name:    "missing base URI",
			cfg:     &Config{Dispatch: DispatchAuto},
			wantErr: true,
		},
		{
			name:    "relative base URI",
			cfg:     &Config{BaseURI: "example.com/things"},
			wantErr: true,
		},
		{
			name:    "unknown dispatch strategy",
			cfg:     &Config{BaseURI: "http://example.com", Dispatch: "dynamic"},
			wantErr: true,
		},
		{
			name: "prefix with colon",
			cfg: &Config{
				BaseURI:  "http://example.com",
				Prefixes: map[string]string{"bad:prefix": "http://example.com/ns#"},
			},
			wantErr: true,
		},
		{
			name: "prefix bound to relative IRI",
			cfg: &Config{
				BaseURI:  "http://example.com",
				Prefixes: map[string]string{"maths": "vocab/maths#"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsInvalid(err))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNamespacesIncludeStandardAndConfigured(t *testing.T) {
	cfg := Default("http://example.com")
	cfg.Prefixes["maths"] = "http://vocab.arvida.de/2015/06/maths/vocab#"

	ns := cfg.Namespaces()
	iri, err := ns.Expand("maths:Vector3D")
	require.NoError(t, err)
	assert.Equal(t, "http://vocab.arvida.de/2015/06/maths/vocab#Vector3D", iri)

	iri, err = ns.Expand("rdf:type")
	require.NoError(t, err)
	assert.Equal(t, "http://www.w3.org/1999/02/22-rdf-syntax-ns#type", iri)
}

func TestRootFallsBackToBaseURI(t *testing.T) {
	cfg := Default("http://example.com")
	assert.Equal(t, "http://example.com", cfg.Root())
	cfg.RootPath = "http://example.com/run7"
	assert.Equal(t, "http://example.com/run7", cfg.Root())
}

func TestCloneIsDeep(t *testing.T) {
	cfg := Default("http://example.com")
	cfg.Prefixes["maths"] = "http://vocab.arvida.de/2015/06/maths/vocab#"

	clone := cfg.Clone()
	clone.Prefixes["maths"] = "http://elsewhere.example/ns#"
	assert.Equal(t, "http://vocab.arvida.de/2015/06/maths/vocab#", cfg.Prefixes["maths"])
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"prefixes": {"spatial": "http://vocab.arvida.de/2015/06/spatial/vocab#"},
		"base_uri": "http://example.com",
		"dispatch": "static",
		"partial_run": true,
		"hooks": {"prolog": "// generated"}
	}`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://example.com", cfg.BaseURI)
	assert.Equal(t, DispatchStatic, cfg.Dispatch)
	assert.True(t, cfg.PartialRun)
	assert.Equal(t, "// generated", cfg.Hooks.Prolog)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
prefixes:
  maths: "http://vocab.arvida.de/2015/06/maths/vocab#"
base_uri: "http://example.com"
hooks:
  includes:
    - common.h
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DispatchAuto, cfg.Dispatch, "dispatch defaults to auto")
	assert.Equal(t, []string{"common.h"}, cfg.Hooks.Includes)
	assert.Equal(t, "http://vocab.arvida.de/2015/06/maths/vocab#", cfg.Prefixes["maths"])
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "absent.json"))
		require.Error(t, err)
		assert.True(t, errors.IsFatal(err))
	})

	t.Run("malformed JSON", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"base_uri": `), 0o600))
		_, err := Load(path)
		require.Error(t, err)
		assert.True(t, errors.IsInvalid(err))
	})

	t.Run("valid syntax invalid content", func(t *testing.T) {
		path := filepath.Join(dir, "rel.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"base_uri": "not-absolute"}`), 0o600))
		_, err := Load(path)
		require.Error(t, err)
		assert.True(t, errors.IsInvalid(err))
	})
}
