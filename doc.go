// Package arvidapp compiles annotated object schemas into bidirectional
// mappings between native Go values and RDF triple graphs.
//
// # Architecture
//
// The compiler turns an annotation tree produced by an external source
// analyzer into three operations per class: pathOf (identity resolution),
// toRDF (triple emission) and fromRDF (triple-pattern matching). The
// operations are expressed against abstract Context/Node types so any
// graph store offering exact-pattern and multi-match queries can back them.
//
//	┌─────────────────────────────────────┐
//	│         annotation / schema         │  analyzer dump → IR
//	│   (two-phase declare-then-bind)     │  construction-time validation
//	└─────────────────────────────────────┘
//	           ↓ compiled by
//	┌─────────────────────────────────────┐
//	│             mapping                 │  pathOf / toRDF / fromRDF
//	│ (path resolver, blank node registry)│  closures over graph.Context
//	└─────────────────────────────────────┘
//	           ↓ orchestrated by
//	┌─────────────────────────────────────┐
//	│             compiler                │  base-before-derived ordering,
//	│  (dispatch strategy, renderer hook) │  partial-run mode, metrics
//	└─────────────────────────────────────┘
//
// # Packages
//
//   - vocabulary: namespace prefix tables and standard W3C IRIs
//   - graph: runtime Node/Store/Context boundary types
//   - graph/memstore: append-only in-memory store for tests and tooling
//   - schema: immutable per-class IR and its validation
//   - mapping: the two generation algorithms plus path/blank resolution
//   - compiler: whole-schema-graph orchestration
//   - annotation: loader for the analyzer's JSON annotation dump
//   - config, errors, metric: run configuration, error classification,
//     prometheus instrumentation
//
// Generation is an offline, single-threaded batch process over an immutable
// schema graph. The graph store is an externally supplied collaborator; if
// one store instance is shared across goroutines at runtime, callers must
// serialize access, since generated readers issue sequences of dependent
// queries that are not atomic as a unit.
package arvidapp
