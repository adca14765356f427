// Package schema holds the immutable intermediate representation for one
// annotated class: its triples, member bindings, blank-node declarations
// and path specification, plus the two-phase registry that resolves classes
// across the whole schema graph.
//
// # Construction
//
// Schemas are built from a fully-resolved annotation tree in two phases:
// every class identity is declared first (Registry.Declare), then triple
// and member bodies are bound in a second pass (Registry.Bind). The split
// allows forward and cyclic references between classes: a bound member may
// name a value class that is declared but not yet bound.
//
// Binding rejects malformed classes outright: conflicting path modes,
// references to undeclared blank nodes, bindings that mix scalar and
// per-element triples, and non-constant predicates all fail with a
// SchemaError identifying class and member. A schema that binds is valid;
// downstream generation performs no further validation.
//
// # Triple grammar
//
// Raw triples use the annotation grammar of the source analyzer: "$this"
// for the enclosing instance's identity node, "$that" for a bound member's
// whole value, "$that.element" (aliases "$that.foreach", "$that.item") for
// one element of a container member, "_:id" for a class-scoped blank node,
// and absolute IRIs or prefixed names for constants. Prefixed names are
// expanded through the run's namespace table at bind time; an unknown
// prefix fails the class.
package schema
