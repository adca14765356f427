package schema

import (
	"fmt"
	"strings"

	"github.com/BMBF-ARVIDA/arivda-preprocessor/errors"
	"github.com/BMBF-ARVIDA/arivda-preprocessor/vocabulary"
)

// RoleKind discriminates the tagged NodeRole variant.
type RoleKind int

const (
	// RoleThis references the enclosing instance's own identity node.
	RoleThis RoleKind = iota
	// RoleThat references the bound member's whole value.
	RoleThat
	// RoleThatElement references one element of a container-valued member.
	RoleThatElement
	// RoleBlank references a named blank node scoped to the class.
	RoleBlank
	// RoleConstant is an IRI resolved at schema-compile time.
	RoleConstant
)

// String returns the string representation of the role kind.
func (k RoleKind) String() string {
	switch k {
	case RoleThis:
		return "this"
	case RoleThat:
		return "that"
	case RoleThatElement:
		return "that-element"
	case RoleBlank:
		return "blank"
	case RoleConstant:
		return "constant"
	default:
		return "unknown"
	}
}

// NodeRole is one position of a declared triple. Exactly one role occupies
// each of the three positions.
type NodeRole struct {
	Kind  RoleKind
	Blank string // RoleBlank: declared identifier, e.g. "_:2"
	IRI   string // RoleConstant: fully expanded IRI
}

// This returns the enclosing-instance role.
func This() NodeRole { return NodeRole{Kind: RoleThis} }

// That returns the member-value role.
func That() NodeRole { return NodeRole{Kind: RoleThat} }

// ThatElement returns the container-element role.
func ThatElement() NodeRole { return NodeRole{Kind: RoleThatElement} }

// BlankRef returns a reference to a class-scoped blank node.
func BlankRef(id string) NodeRole { return NodeRole{Kind: RoleBlank, Blank: id} }

// Constant returns a compile-time-fixed IRI role.
func Constant(iri string) NodeRole { return NodeRole{Kind: RoleConstant, IRI: iri} }

// Triple is one declared (subject, predicate, object) pattern.
type Triple struct {
	Subject   NodeRole
	Predicate NodeRole
	Object    NodeRole
}

// Roles returns the three positions in subject, predicate, object order.
func (t Triple) Roles() [3]NodeRole {
	return [3]NodeRole{t.Subject, t.Predicate, t.Object}
}

// RefsThat reports whether any position references the member's whole value.
func (t Triple) RefsThat() bool {
	for _, r := range t.Roles() {
		if r.Kind == RoleThat {
			return true
		}
	}
	return false
}

// RefsThatElement reports whether any position references a container element.
func (t Triple) RefsThatElement() bool {
	for _, r := range t.Roles() {
		if r.Kind == RoleThatElement {
			return true
		}
	}
	return false
}

// thatElementNames are the accepted aliases for the container-element
// meta variable in the annotation grammar.
var thatElementNames = map[string]bool{
	"$that.element": true,
	"$that.foreach": true,
	"$that.item":    true,
}

// parseRole resolves one raw annotation element into a NodeRole. memberScope
// allows $that/$that.element; class-level triples must not reference them.
func parseRole(raw string, blanks map[string]bool, ns *vocabulary.Namespaces, memberScope bool) (NodeRole, error) {
	switch {
	case raw == "$this":
		return This(), nil
	case raw == "$that":
		if !memberScope {
			return NodeRole{}, fmt.Errorf("per-class triple cannot reference %q: %w", raw, errors.ErrBadTriplePosition)
		}
		return That(), nil
	case thatElementNames[raw]:
		if !memberScope {
			return NodeRole{}, fmt.Errorf("per-class triple cannot reference %q: %w", raw, errors.ErrBadTriplePosition)
		}
		return ThatElement(), nil
	case strings.HasPrefix(raw, "_:"):
		if !blanks[raw] {
			return NodeRole{}, fmt.Errorf("%q: %w", raw, errors.ErrUndeclaredBlank)
		}
		return BlankRef(raw), nil
	default:
		iri, err := ns.Expand(raw)
		if err != nil {
			return NodeRole{}, err
		}
		return Constant(iri), nil
	}
}

// parseTriple resolves one raw triple declaration, enforcing the predicate
// invariant: predicates are always constants or blanks.
func parseTriple(decl TripleDecl, blanks map[string]bool, ns *vocabulary.Namespaces, memberScope bool) (Triple, error) {
	var roles [3]NodeRole
	for i, raw := range decl {
		role, err := parseRole(raw, blanks, ns, memberScope)
		if err != nil {
			return Triple{}, err
		}
		roles[i] = role
	}
	if k := roles[1].Kind; k != RoleConstant && k != RoleBlank {
		return Triple{}, fmt.Errorf("predicate role %s: %w", roles[1].Kind, errors.ErrBadTriplePosition)
	}
	return Triple{Subject: roles[0], Predicate: roles[1], Object: roles[2]}, nil
}
