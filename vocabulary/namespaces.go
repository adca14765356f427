package vocabulary

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BMBF-ARVIDA/arivda-preprocessor/errors"
)

// Namespaces maps namespace prefixes to base IRIs for one compilation run.
// The zero value is empty; use NewNamespaces to start from the standard
// W3C bindings. Namespaces is immutable after construction apart from Bind,
// which callers use only while assembling a run configuration.
type Namespaces struct {
	prefixes map[string]string
}

// NewNamespaces returns a table pre-populated with the standard W3C
// bindings (rdf, rdfs, xsd, owl, dc).
func NewNamespaces() *Namespaces {
	ns := &Namespaces{prefixes: make(map[string]string, len(standardPrefixes))}
	for prefix, base := range standardPrefixes {
		ns.prefixes[prefix] = base
	}
	return ns
}

// Bind adds or replaces one prefix binding. The prefix is given without the
// trailing colon.
func (ns *Namespaces) Bind(prefix, base string) {
	if ns.prefixes == nil {
		ns.prefixes = make(map[string]string)
	}
	ns.prefixes[prefix] = base
}

// Prefixes returns the bound prefixes in sorted order.
func (ns *Namespaces) Prefixes() []string {
	out := make([]string, 0, len(ns.prefixes))
	for p := range ns.prefixes {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// IsAbsolute reports whether name is already a full IRI rather than a
// prefixed name.
func IsAbsolute(name string) bool {
	return strings.Contains(name, "://")
}

// IsPrefixed reports whether name has the prefix:local form of a prefixed
// name. Absolute IRIs are not prefixed names even though they contain a
// colon.
func IsPrefixed(name string) bool {
	if IsAbsolute(name) {
		return false
	}
	return strings.Contains(name, ":")
}

// Expand resolves a prefixed name to a full IRI. Absolute IRIs pass through
// unchanged. An unknown prefix is a hard error identifying the prefix.
func (ns *Namespaces) Expand(name string) (string, error) {
	if IsAbsolute(name) {
		return name, nil
	}
	idx := strings.Index(name, ":")
	if idx < 0 {
		return "", fmt.Errorf("%q is not a prefixed name: %w", name, errors.ErrUnknownPrefix)
	}
	prefix, local := name[:idx], name[idx+1:]
	base, ok := ns.prefixes[prefix]
	if !ok {
		return "", fmt.Errorf("prefix %q in %q: %w", prefix, name, errors.ErrUnknownPrefix)
	}
	return base + local, nil
}

// MustExpand is Expand for bindings known to exist, such as the standard
// prefixes installed by NewNamespaces. It panics on an unknown prefix.
func (ns *Namespaces) MustExpand(name string) string {
	iri, err := ns.Expand(name)
	if err != nil {
		panic(err)
	}
	return iri
}
