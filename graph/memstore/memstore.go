// Package memstore provides an append-only in-memory graph store.
//
// It is the reference Store implementation used by the compiler's tests and
// by offline tooling: statements are kept in insertion order, multi-match
// queries return matches in that order, and nothing is deduplicated. Blank
// node labels are sequential per store, which keeps repeated generation
// runs against fresh stores byte-for-byte comparable.
package memstore

import (
	"fmt"
	"io"
	"sync"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/nquads"

	"github.com/BMBF-ARVIDA/arivda-preprocessor/graph"
)

// Store is an in-memory, append-only triple store.
type Store struct {
	mu       sync.Mutex
	stmts    []graph.Statement
	blankSeq int
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// AddStatement appends one statement. Duplicates are kept; order is
// significant for deterministic testing.
func (s *Store) AddStatement(subject, predicate, object graph.Node) error {
	if subject == nil || predicate == nil || object == nil {
		return fmt.Errorf("memstore: nil position in statement (%v %v %v)", subject, predicate, object)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stmts = append(s.stmts, graph.Statement{Subject: subject, Predicate: predicate, Object: object})
	return nil
}

// FindStatement returns the first statement matching the pattern.
func (s *Store) FindStatement(p graph.Pattern) (graph.Statement, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range s.stmts {
		if p.Matches(st) {
			return st, true, nil
		}
	}
	return graph.Statement{}, false, nil
}

// FindStatements returns all statements matching the pattern in insertion
// order.
func (s *Store) FindStatements(p graph.Pattern) ([]graph.Statement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []graph.Statement
	for _, st := range s.stmts {
		if p.Matches(st) {
			out = append(out, st)
		}
	}
	return out, nil
}

// NewBlankNode allocates a fresh blank node with a store-scoped sequential
// label.
func (s *Store) NewBlankNode() graph.Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blankSeq++
	return quad.BNode(fmt.Sprintf("b%d", s.blankSeq))
}

// NewURINode resolves a fully expanded IRI to a node handle.
func (s *Store) NewURINode(iri string) graph.Node {
	return quad.IRI(iri)
}

// NewLiteral converts a native value to a literal node.
func (s *Store) NewLiteral(v any) (graph.Node, error) {
	return graph.Literal(v)
}

// IsValidValue reports whether a member value is serializable.
func (s *Store) IsValidValue(v any) bool {
	return graph.DefaultValidValue(v)
}

// Len returns the number of stored statements.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.stmts)
}

// Statements returns a copy of all stored statements in insertion order.
func (s *Store) Statements() []graph.Statement {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]graph.Statement, len(s.stmts))
	copy(out, s.stmts)
	return out
}

// WriteNQuads dumps the store contents as N-Quads in insertion order.
func (s *Store) WriteNQuads(w io.Writer) error {
	qw := nquads.NewWriter(w)
	for _, st := range s.Statements() {
		q := quad.Quad{Subject: st.Subject, Predicate: st.Predicate, Object: st.Object}
		if err := qw.WriteQuad(q); err != nil {
			return err
		}
	}
	return qw.Close()
}
