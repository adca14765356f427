package mapping

import (
	"github.com/BMBF-ARVIDA/arivda-preprocessor/errors"
	"github.com/BMBF-ARVIDA/arivda-preprocessor/graph"
	"github.com/BMBF-ARVIDA/arivda-preprocessor/schema"
)

// compileWriter builds the toRDF operation. Emission order is fixed: base
// classes first, then scalar bindings, container bindings, and class-level
// triples last. Order is significant for append-only stores and for
// deterministic testing.
func (g *Generator) compileWriter(cs *schema.ClassSchema) func(ctx *graph.Context, this graph.Node, v any) (graph.Node, error) {
	return func(ctx *graph.Context, this graph.Node, v any) (graph.Node, error) {
		for _, base := range cs.Bases {
			bops, err := g.lookup.OpsFor(base.Name)
			if err != nil {
				return nil, err
			}
			bv := v
			if base.Project != nil {
				bv = base.Project(v)
			}
			if _, err := bops.ToRDF(ctx, this, bv); err != nil {
				return nil, err
			}
		}

		blanks := newBlankRegistry(ctx.Store)
		for _, id := range cs.Blanks {
			blanks.allocate(id)
		}

		fill := func(role schema.NodeRole, that, element graph.Node) graph.Node {
			switch role.Kind {
			case schema.RoleThis:
				return this
			case schema.RoleThat:
				return that
			case schema.RoleThatElement:
				return element
			case schema.RoleBlank:
				return blanks.allocate(role.Blank)
			default:
				return ctx.Store.NewURINode(role.IRI)
			}
		}

		emit := func(t schema.Triple, that, element graph.Node) error {
			err := ctx.Store.AddStatement(
				fill(t.Subject, that, element),
				fill(t.Predicate, that, element),
				fill(t.Object, that, element),
			)
			return errors.Wrap(err, "Writer", "ToRDF", "appending statement")
		}

		for _, b := range cs.Bindings {
			if b.Container {
				continue
			}
			val := b.Get(v)
			if !ctx.Store.IsValidValue(val) {
				// Designed no-op: the value is not serializable.
				continue
			}
			var that graph.Node
			if bindingRefsThat(b) {
				n, _, err := g.resolveValueNode(ctx, b, val, true)
				if err != nil {
					return nil, err
				}
				that = n
			}
			for _, t := range b.Triples {
				if err := emit(t, that, nil); err != nil {
					return nil, err
				}
			}
		}

		for _, b := range cs.Bindings {
			if !b.Container {
				continue
			}
			if !ctx.Store.IsValidValue(b.Get(v)) {
				continue
			}
			for _, el := range b.Elements(v) {
				// Element nodes resolve through the element type's own
				// path resolution, never through a blank node.
				elemNode, _, err := g.resolveValueNode(ctx, b, el, true)
				if err != nil {
					return nil, err
				}
				for _, t := range b.Triples {
					if err := emit(t, nil, elemNode); err != nil {
						return nil, err
					}
				}
			}
		}

		for _, t := range cs.ClassTriples {
			if err := emit(t, nil, nil); err != nil {
				return nil, err
			}
		}

		return this, nil
	}
}
