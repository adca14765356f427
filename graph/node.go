package graph

import (
	"fmt"

	"github.com/cayleygraph/quad"

	"github.com/BMBF-ARVIDA/arivda-preprocessor/errors"
)

// Node is an opaque handle to one resolved graph node. A nil Node is the
// wildcard in pattern queries and the "not yet bound" state of blank node
// placeholders during a read.
type Node = quad.Value

// IRI returns an IRI node for a fully expanded IRI string.
func IRI(iri string) Node {
	return quad.IRI(iri)
}

// Blank returns a blank node with the given store-level label.
func Blank(label string) Node {
	return quad.BNode(label)
}

// Literal converts a native Go value into a literal node. Supported kinds
// are the quad native kinds: string, bool, integers, floats and time.Time.
func Literal(v any) (Node, error) {
	out, ok := quad.AsValue(v)
	if !ok {
		return nil, fmt.Errorf("value of type %T: %w", v, errors.ErrDecode)
	}
	return out, nil
}

// NativeOf converts a literal node back into its native Go value. IRIs and
// blank nodes convert to their quad representations, not to strings.
func NativeOf(n Node) any {
	if n == nil {
		return nil
	}
	return quad.NativeOf(n)
}

// SameNode reports whether two nodes resolve to the same graph node.
// Either side may be nil; nil equals only nil.
func SameNode(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a == b
}
