// Package mapping compiles a class schema into its three generated
// operations: pathOf (identity resolution), toRDF (triple emission) and
// fromRDF (triple-pattern matching). The operations are closures over the
// graph.Context/Node boundary types and are pure with respect to the
// schema: they touch only the transient context and the native value being
// read or written.
//
// # Writer
//
// toRDF emits, in order: base-class triples (bases first), blank node
// allocation, scalar member bindings (skipping values the store's validity
// predicate rejects), container member bindings in natural enumeration
// order, and finally the class-level triples. Statements are appended to
// the destination store in exactly that order with no deduplication.
//
// # Reader
//
// fromRDF matches class-level patterns first, binding the blank nodes they
// mention, then member bindings: each scalar pattern must match exactly one
// statement with a single unbound position, containers collect every match
// of their anchor pattern into a freshly built container assigned once. A
// class read either fully succeeds or fully fails; a failed read reports
// the offending class and member to the immediate caller and is never
// escalated to a run-level error.
package mapping
