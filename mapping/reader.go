package mapping

import (
	"fmt"

	"github.com/BMBF-ARVIDA/arivda-preprocessor/errors"
	"github.com/BMBF-ARVIDA/arivda-preprocessor/graph"
	"github.com/BMBF-ARVIDA/arivda-preprocessor/schema"
)

// compileReader builds the fromRDF operation. The read is all-or-nothing
// per class: the first required pattern without a match fails the class,
// and setter calls for a scalar binding are deferred until every pattern
// of that binding has matched, so optional bindings never leave a member
// half-assigned.
func (g *Generator) compileReader(cs *schema.ClassSchema) func(ctx *graph.Context, this graph.Node, v any) error {
	return func(ctx *graph.Context, this0 graph.Node, v any) error {
		this := this0

		for _, base := range cs.Bases {
			bops, err := g.lookup.OpsFor(base.Name)
			if err != nil {
				return err
			}
			bv := v
			if base.Project != nil {
				bv = base.Project(v)
			}
			if err := bops.FromRDF(ctx, this, bv); err != nil {
				return err
			}
		}

		// Blank placeholders start unbound; a pattern match binds them
		// for use by later patterns in this class.
		blanks := make(map[string]graph.Node, len(cs.Blanks))

		buildPattern := func(t schema.Triple) graph.Pattern {
			pos := func(role schema.NodeRole) graph.Node {
				switch role.Kind {
				case schema.RoleThis:
					return this
				case schema.RoleBlank:
					return blanks[role.Blank]
				case schema.RoleConstant:
					return ctx.Store.NewURINode(role.IRI)
				default: // That / ThatElement: the position to recover
					return nil
				}
			}
			return graph.Pattern{
				Subject:   pos(t.Subject),
				Predicate: pos(t.Predicate),
				Object:    pos(t.Object),
			}
		}

		// bindMatched rebinds this, binds blanks, and queues the setter
		// call for a recovered member value.
		bindMatched := func(t schema.Triple, st graph.Statement, b *schema.MemberBinding, sets *[]func() error) error {
			roles := t.Roles()
			nodes := [3]graph.Node{st.Subject, st.Predicate, st.Object}
			for i, role := range roles {
				node := nodes[i]
				switch role.Kind {
				case schema.RoleThis:
					// Supports identity discovered only via a relation.
					this = node
				case schema.RoleBlank:
					if blanks[role.Blank] == nil {
						blanks[role.Blank] = node
					}
				case schema.RoleThat:
					val, err := g.decodeValue(ctx, b, node)
					if err != nil {
						return errors.NewMemberError(cs.Name, b.Member, err)
					}
					set := b.Set
					*sets = append(*sets, func() error { return set(v, val) })
				}
			}
			return nil
		}

		// Class-level patterns first: they carry no member positions and
		// bind the blanks that member patterns substitute, keeping every
		// subsequent query down to a single unbound position.
		for _, t := range cs.ClassTriples {
			st, ok, err := ctx.Store.FindStatement(buildPattern(t))
			if err != nil {
				return errors.WrapTransient(err, "Reader", "FromRDF", "querying store")
			}
			if !ok {
				return errors.NewSchemaError(cs.Name, errors.ErrNoMatch)
			}
			if err := bindMatched(t, st, nil, nil); err != nil {
				return err
			}
		}

		for _, b := range cs.Bindings {
			if b.Container || len(b.Triples) == 0 {
				continue
			}
			var sets []func() error
			skipped := false
			for _, t := range b.Triples {
				st, ok, err := ctx.Store.FindStatement(buildPattern(t))
				if err != nil {
					return errors.WrapTransient(err, "Reader", "FromRDF", "querying store")
				}
				if !ok {
					if b.Optional {
						// The writer's validity check legitimately
						// skipped this binding; leave the default.
						skipped = true
						break
					}
					return errors.NewMemberError(cs.Name, b.Member, errors.ErrNoMatch)
				}
				if err := bindMatched(t, st, b, &sets); err != nil {
					return err
				}
			}
			if skipped {
				continue
			}
			for _, set := range sets {
				if err := set(); err != nil {
					return errors.NewMemberError(cs.Name, b.Member, err)
				}
			}
		}

		for _, b := range cs.Bindings {
			if !b.Container || len(b.Triples) == 0 {
				continue
			}
			anchor := b.Triples[0]
			matches, err := ctx.Store.FindStatements(buildPattern(anchor))
			if err != nil {
				return errors.WrapTransient(err, "Reader", "FromRDF", "querying store")
			}
			if len(matches) == 0 {
				if b.Optional {
					continue
				}
				return errors.NewMemberError(cs.Name, b.Member, errors.ErrNoMatch)
			}
			// Build the container fresh and assign it once; the live
			// member is never mutated incrementally.
			elems := make([]any, 0, len(matches))
			for _, st := range matches {
				node, err := elementNode(anchor, st)
				if err != nil {
					return errors.NewMemberError(cs.Name, b.Member, err)
				}
				val, err := g.decodeValue(ctx, b, node)
				if err != nil {
					return errors.NewMemberError(cs.Name, b.Member, err)
				}
				elems = append(elems, val)
			}
			if err := b.Set(v, elems); err != nil {
				return errors.NewMemberError(cs.Name, b.Member, err)
			}
		}

		return nil
	}
}

// decodeValue converts a matched node into a member or element value: a
// custom decoder when declared, the value class's own reader for
// schema-bound types, the native literal value otherwise.
func (g *Generator) decodeValue(ctx *graph.Context, b *schema.MemberBinding, node graph.Node) (any, error) {
	if b.Decode != nil {
		return b.Decode(ctx, node)
	}
	if b.ValueClass != "" {
		ops, err := g.lookup.OpsFor(b.ValueClass)
		if err != nil {
			return nil, err
		}
		nv := b.New()
		if err := ops.FromRDF(ctx, node, nv); err != nil {
			return nil, err
		}
		return nv, nil
	}
	if node == nil {
		return nil, errors.ErrInvalidNode
	}
	return graph.NativeOf(node), nil
}

// elementNode extracts the element position of an anchor pattern match.
func elementNode(anchor schema.Triple, st graph.Statement) (graph.Node, error) {
	roles := anchor.Roles()
	nodes := [3]graph.Node{st.Subject, st.Predicate, st.Object}
	for i, role := range roles {
		if role.Kind == schema.RoleThatElement {
			return nodes[i], nil
		}
	}
	return nil, fmt.Errorf("anchor pattern has no element position: %w", errors.ErrInvalidNode)
}
