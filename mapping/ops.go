package mapping

import (
	"fmt"

	"github.com/BMBF-ARVIDA/arivda-preprocessor/errors"
	"github.com/BMBF-ARVIDA/arivda-preprocessor/graph"
	"github.com/BMBF-ARVIDA/arivda-preprocessor/schema"
)

// Ops is the compiled triple of generated operations for one class.
type Ops struct {
	Class *schema.ClassSchema

	// PathOf resolves the instance's identity URI.
	PathOf func(ctx *graph.Context, v any) (string, error)

	// ToRDF emits the instance's triples under an already resolved
	// identity node and returns that node.
	ToRDF func(ctx *graph.Context, this graph.Node, v any) (graph.Node, error)

	// FromRDF reconstructs the instance in place from the graph rooted
	// at the identity node. v must be addressable (a pointer).
	FromRDF func(ctx *graph.Context, this graph.Node, v any) error
}

// Write resolves the instance's identity node and serializes it: the
// top-level entry point combining PathOf and ToRDF.
func (o *Ops) Write(ctx *graph.Context, v any) (graph.Node, error) {
	uri, err := o.PathOf(ctx, v)
	if err != nil {
		return nil, err
	}
	this := ctx.Store.NewURINode(uri)
	return o.ToRDF(ctx.WithPath(uri), this, v)
}

// Lookup resolves compiled operations for other classes during generated
// calls. Resolution is lazy so mutually referencing classes compile in any
// order.
type Lookup interface {
	// OpsFor resolves by class name (static dispatch).
	OpsFor(class string) (*Ops, error)

	// OpsForType resolves by run-time type identity (table dispatch).
	OpsForType(v any) (*Ops, bool)
}

// Generator compiles class schemas into operations. One Generator serves
// one compilation run; it holds no mutable state of its own.
type Generator struct {
	lookup Lookup
}

// NewGenerator creates a generator resolving cross-class references
// through lookup.
func NewGenerator(lookup Lookup) *Generator {
	return &Generator{lookup: lookup}
}

// Compile builds the three operations for a bound class schema. Accessor
// completeness is checked here so a compiled class never fails on a
// missing accessor at generation time.
func (g *Generator) Compile(cs *schema.ClassSchema) (*Ops, error) {
	if !cs.Bound() {
		return nil, errors.NewSchemaError(cs.Name, errors.ErrUnknownClass)
	}
	if err := checkAccessors(cs); err != nil {
		return nil, err
	}
	pathOf, err := compilePathOf(cs)
	if err != nil {
		return nil, err
	}
	ops := &Ops{Class: cs, PathOf: pathOf}
	ops.ToRDF = g.compileWriter(cs)
	ops.FromRDF = g.compileReader(cs)
	return ops, nil
}

func checkAccessors(cs *schema.ClassSchema) error {
	for _, b := range cs.Bindings {
		switch {
		case b.Container:
			if b.Get == nil || b.Elements == nil || b.Set == nil {
				return errors.NewMemberError(cs.Name, b.Member, errors.ErrMissingAccessor)
			}
			if b.ValueClass != "" && b.New == nil && b.Decode == nil {
				return errors.NewMemberError(cs.Name, b.Member, errors.ErrMissingAccessor)
			}
		default:
			if b.Get == nil {
				return errors.NewMemberError(cs.Name, b.Member, errors.ErrMissingAccessor)
			}
			if bindingRefsThat(b) && b.Set == nil {
				return errors.NewMemberError(cs.Name, b.Member, errors.ErrMissingAccessor)
			}
			if b.ValueClass != "" && b.New == nil && b.Decode == nil {
				return errors.NewMemberError(cs.Name, b.Member, errors.ErrMissingAccessor)
			}
		}
	}
	return nil
}

func bindingRefsThat(b *schema.MemberBinding) bool {
	for _, t := range b.Triples {
		if t.RefsThat() {
			return true
		}
	}
	return false
}

// valueOps resolves the operations serving a member or element value.
// Static resolution uses the declared value class; classes marked
// polymorphic are re-resolved by run-time type identity against the
// dispatch table.
func (g *Generator) valueOps(b *schema.MemberBinding, val any) (*Ops, error) {
	static, err := g.lookup.OpsFor(b.ValueClass)
	if err != nil {
		return nil, err
	}
	if static.Class.Polymorphic {
		if dyn, ok := g.lookup.OpsForType(val); ok {
			return dyn, nil
		}
	}
	return static, nil
}

// resolveValueNode computes the node for a member or element value: a
// literal for plain values, or the value's own identity node (optionally
// serializing its subtree) for schema-bound values. The returned context
// is positioned at the value's path for further descent.
func (g *Generator) resolveValueNode(ctx *graph.Context, b *schema.MemberBinding, val any, serialize bool) (graph.Node, *graph.Context, error) {
	if b.ValueClass == "" {
		n, err := ctx.Store.NewLiteral(val)
		if err != nil {
			return nil, nil, fmt.Errorf("member %s: %w", b.Member, err)
		}
		return n, ctx, nil
	}

	ops, err := g.valueOps(b, val)
	if err != nil {
		return nil, nil, err
	}
	base := ctx.Path
	if b.PathAbsolute {
		base = ""
	}
	uri, err := ops.PathOf(ctx.WithPath(JoinPath(base, b.Path)), val)
	if err != nil {
		return nil, nil, err
	}
	node := ctx.Store.NewURINode(uri)
	childCtx := ctx.WithPath(uri)
	if serialize {
		if _, err := ops.ToRDF(childCtx, node, val); err != nil {
			return nil, nil, err
		}
	}
	return node, childCtx, nil
}
