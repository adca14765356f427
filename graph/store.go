package graph

import (
	"github.com/BMBF-ARVIDA/arivda-preprocessor/vocabulary"
)

// Statement is one (subject, predicate, object) relation in the graph.
type Statement struct {
	Subject   Node
	Predicate Node
	Object    Node
}

// Pattern is a triple lookup with some positions bound and others left nil
// to be resolved by the store.
type Pattern struct {
	Subject   Node
	Predicate Node
	Object    Node
}

// Matches reports whether a statement satisfies the pattern. Nil pattern
// positions are wildcards.
func (p Pattern) Matches(st Statement) bool {
	if p.Subject != nil && !SameNode(p.Subject, st.Subject) {
		return false
	}
	if p.Predicate != nil && !SameNode(p.Predicate, st.Predicate) {
		return false
	}
	if p.Object != nil && !SameNode(p.Object, st.Object) {
		return false
	}
	return true
}

// Store is the externally supplied graph store. Implementations must
// preserve insertion order in multi-match queries and must not deduplicate
// statements; the generated writer relies on both for deterministic
// emission. Store calls are stateless per call: a store shared across
// goroutines must be serialized by the caller, since generated readers
// issue sequences of dependent queries.
type Store interface {
	// AddStatement appends one statement to the store.
	AddStatement(subject, predicate, object Node) error

	// FindStatement returns the first statement matching the pattern,
	// or ok=false when nothing matches.
	FindStatement(p Pattern) (Statement, bool, error)

	// FindStatements returns every statement matching the pattern in
	// insertion order.
	FindStatements(p Pattern) ([]Statement, error)

	// NewBlankNode allocates a fresh store-level blank node.
	NewBlankNode() Node

	// NewURINode resolves a fully expanded IRI to a node handle.
	NewURINode(iri string) Node

	// NewLiteral converts a native value to a literal node.
	NewLiteral(v any) (Node, error)

	// IsValidValue reports whether a member value is serializable.
	// Writers skip bindings whose value is not; this is a designed
	// no-op, not an error.
	IsValidValue(v any) bool
}

// Context bundles the graph store handle and the run's namespace table,
// plus the traversal state needed by root-relative path resolution. It is
// passed by reference through every generated call and never stored.
type Context struct {
	Store      Store
	Namespaces *vocabulary.Namespaces

	// Base is the run's base IRI; uid-mode paths resolve relative to it.
	Base string

	// Path is the traversal path accumulated from the root object; only
	// concatenation-mode paths depend on it.
	Path string
}

// WithPath returns a copy of the context positioned at a new traversal
// path. The receiver is unchanged; generated writers descend with the
// copy so sibling members never observe each other's paths.
func (ctx *Context) WithPath(path string) *Context {
	out := *ctx
	out.Path = path
	return &out
}
