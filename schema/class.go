package schema

import (
	"reflect"

	"github.com/BMBF-ARVIDA/arivda-preprocessor/graph"
)

// PathMode selects how a class instance's identity URI is computed.
type PathMode int

const (
	// PathConcat concatenates declared sub-paths from the traversal root
	// down to the value. Root-dependent; the default mode.
	PathConcat PathMode = iota
	// PathTemplate synthesizes a URI from a string pattern with
	// placeholder expressions over member values. Root-independent when
	// the pattern is absolute.
	PathTemplate
	// PathUid delegates to a designated accessor returning a
	// caller-unique identifier, resolved relative to the run's base IRI.
	PathUid
)

// String returns the string representation of the path mode.
func (m PathMode) String() string {
	switch m {
	case PathConcat:
		return "concat"
	case PathTemplate:
		return "template"
	case PathUid:
		return "uid"
	default:
		return "unknown"
	}
}

// PathSpec is a class's identity resolution specification. Exactly one
// mode is active per class, fixed at schema-construction time.
type PathSpec struct {
	Mode PathMode

	// UidAccessor names the uid accessor; Uid is the attached func.
	// Uniqueness of returned identifiers is a caller obligation.
	UidAccessor string
	Uid         func(any) string

	// Template is the raw pattern for template mode.
	Template string

	// SubPath is the class's relative sub-path for concat mode.
	SubPath string

	// Absolute marks a concat-mode path that is already rooted.
	Absolute bool
}

// DecodeFunc converts a matched graph node into a member or element value.
type DecodeFunc func(ctx *graph.Context, n graph.Node) (any, error)

// MemberBinding ties one accessor to its declared triples. A binding is
// exactly one of scalar or container; scalar and per-element triples never
// mix within one binding.
type MemberBinding struct {
	// Member is the accessor identity from the annotation tree.
	Member string

	// Triples are the declared patterns referencing this member.
	Triples []Triple

	// Path is the member's path override, joined under the enclosing
	// instance's path unless PathAbsolute is set. Containers apply it to
	// element resolution.
	Path         string
	PathAbsolute bool

	// Container marks a container-valued member.
	Container bool

	// Optional marks a binding whose writer-side validity skip is a
	// legitimate outcome: the reader leaves the member at its default
	// when the pattern has no matches instead of failing the class.
	Optional bool

	// ValueClass names the schema-bound class of the member value (or
	// container element). Empty for literal-valued members.
	ValueClass string

	// Accessors attached before compilation. Get reads the member value;
	// Set assigns it (containers receive []any holding decoded elements
	// in first-match order); Elements enumerates a container in natural
	// order; New returns a fresh addressable zero value for schema-bound
	// member or element types; Decode overrides element decoding.
	Get      func(any) any
	Set      func(any, any) error
	Elements func(any) []any
	New      func() any
	Decode   DecodeFunc
}

// BaseRef is an ordered reference to a base class schema. Project maps a
// derived instance to the embedded base view so base accessors observe
// their own type.
type BaseRef struct {
	Name    string
	Project func(any) any
}

// ClassSchema is the compiled IR for one annotated class. Built once from
// analyzer output, immutable thereafter, and owned exclusively by the
// mapping compiler for the duration of one compilation run.
type ClassSchema struct {
	// Name is the class identity within the registry.
	Name string

	// Type is the run-time type identity used by table dispatch.
	Type reflect.Type

	// Bases are the declared base classes in declaration order.
	Bases []BaseRef

	// Blanks are the blank-node identifiers declared by this class.
	// Identifiers are unique within this class's declaration scope only.
	Blanks []string

	// ClassTriples are the class-level triples not tied to a member.
	ClassTriples []Triple

	// Bindings are the member bindings in declaration order.
	Bindings []*MemberBinding

	// Path is the class's identity resolution spec.
	Path PathSpec

	// Polymorphic marks classes dispatched by run-time type identity
	// across unrelated schema sets. Propagated across the annotated
	// hierarchy before strategy selection.
	Polymorphic bool

	bound bool
}

// Bound reports whether the class body has been bound (second phase).
func (cs *ClassSchema) Bound() bool {
	return cs.bound
}

// Binding returns the member binding with the given accessor identity.
func (cs *ClassSchema) Binding(member string) *MemberBinding {
	for _, b := range cs.Bindings {
		if b.Member == member {
			return b
		}
	}
	return nil
}
