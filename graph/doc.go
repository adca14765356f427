// Package graph defines the runtime boundary between generated mapping
// logic and a concrete RDF graph store.
//
// Generated readers and writers operate only on the types declared here:
// an opaque Node handle, a Statement triple, a Pattern query with wildcard
// positions, the Store interface, and a transient Context bundling the
// store handle with the run's namespace table. The core never assumes a
// particular store implementation beyond exact-pattern and multi-match
// queries; graph/memstore provides the reference implementation.
//
// Node values are cayleygraph/quad values: IRIs, blank nodes and typed
// literals, with native Go value conversion in both directions.
package graph
