package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BMBF-ARVIDA/arivda-preprocessor/errors"
	"github.com/BMBF-ARVIDA/arivda-preprocessor/vocabulary"
)

// Dispatch strategy constants
const (
	DispatchAuto   = "auto"   // per-class: table when marked polymorphic, static otherwise
	DispatchStatic = "static" // always resolve by declared value class
	DispatchTable  = "table"  // always resolve by run-time type identity
)

// Hooks carries run-level renderer hook material. Prolog text is handed to
// the renderer before the first class, epilog text after the last one;
// includes are opaque strings the renderer interprets.
type Hooks struct {
	Prolog   string   `json:"prolog,omitempty" yaml:"prolog,omitempty"`
	Epilog   string   `json:"epilog,omitempty" yaml:"epilog,omitempty"`
	Includes []string `json:"includes,omitempty" yaml:"includes,omitempty"`
}

// Config represents one compilation run's configuration.
type Config struct {
	// Prefixes maps namespace prefixes to base IRIs, on top of the
	// standard W3C bindings.
	Prefixes map[string]string `json:"prefixes" yaml:"prefixes"`

	// BaseURI anchors uid-mode path resolution. Required.
	BaseURI string `json:"base_uri" yaml:"base_uri"`

	// RootPath is the traversal root for concatenation-mode paths.
	// Defaults to BaseURI.
	RootPath string `json:"root_path,omitempty" yaml:"root_path,omitempty"`

	// Dispatch selects the dispatch strategy. Defaults to "auto".
	Dispatch string `json:"dispatch,omitempty" yaml:"dispatch,omitempty"`

	// PartialRun continues the run past classes that fail to compile;
	// failed classes emit no logic and are reported at the end.
	PartialRun bool `json:"partial_run,omitempty" yaml:"partial_run,omitempty"`

	Hooks Hooks `json:"hooks,omitempty" yaml:"hooks,omitempty"`
}

// Default returns a minimal valid configuration anchored at base.
func Default(base string) *Config {
	return &Config{
		Prefixes: map[string]string{},
		BaseURI:  base,
		Dispatch: DispatchAuto,
	}
}

// Validate checks the configuration for completeness and consistency.
// It returns the first field-level error found.
func (c *Config) Validate() error {
	if c == nil {
		return errors.WrapInvalid(errors.ErrMissingConfig, "Config", "Validate", "checking presence")
	}
	if c.BaseURI == "" {
		return errors.WrapInvalid(
			fmt.Errorf("base_uri is required: %w", errors.ErrInvalidConfig),
			"Config", "Validate", "checking base_uri")
	}
	if !vocabulary.IsAbsolute(c.BaseURI) {
		return errors.WrapInvalid(
			fmt.Errorf("base_uri %q is not an absolute IRI: %w", c.BaseURI, errors.ErrInvalidConfig),
			"Config", "Validate", "checking base_uri")
	}
	switch c.Dispatch {
	case "", DispatchAuto, DispatchStatic, DispatchTable:
	default:
		return errors.WrapInvalid(
			fmt.Errorf("dispatch %q is not one of auto, static, table: %w", c.Dispatch, errors.ErrInvalidConfig),
			"Config", "Validate", "checking dispatch")
	}
	for prefix, base := range c.Prefixes {
		if prefix == "" || strings.ContainsAny(prefix, ": \t") {
			return errors.WrapInvalid(
				fmt.Errorf("prefix %q is not a valid namespace prefix: %w", prefix, errors.ErrInvalidConfig),
				"Config", "Validate", "checking prefixes")
		}
		if !vocabulary.IsAbsolute(base) {
			return errors.WrapInvalid(
				fmt.Errorf("prefix %q binds non-absolute IRI %q: %w", prefix, base, errors.ErrInvalidConfig),
				"Config", "Validate", "checking prefixes")
		}
	}
	return nil
}

// Namespaces builds the run's namespace table: the standard bindings plus
// the configured prefixes.
func (c *Config) Namespaces() *vocabulary.Namespaces {
	ns := vocabulary.NewNamespaces()
	for prefix, base := range c.Prefixes {
		ns.Bind(prefix, base)
	}
	return ns
}

// Root returns the traversal root path, falling back to the base URI.
func (c *Config) Root() string {
	if c.RootPath != "" {
		return c.RootPath
	}
	return c.BaseURI
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return &Config{}
	}
	data, err := json.Marshal(c)
	if err != nil {
		copied := *c
		return &copied
	}
	var clone Config
	if err := json.Unmarshal(data, &clone); err != nil {
		copied := *c
		return &copied
	}
	return &clone
}
