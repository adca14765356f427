// Package compiler orchestrates a compilation run.
//
// A Compiler takes a bound schema registry and a run configuration,
// resolves base-class ordering, propagates polymorphism across the
// hierarchy, compiles every class into mapping operations, and hands the
// results to a Renderer. The compiler is the module's Lookup: generated
// operations resolve cross-class references through it, so the dispatch
// strategy from the run configuration applies uniformly.
//
// A run is single-threaded by construction. The compiled result is
// immutable afterwards and safe for concurrent use by generated
// operations.
package compiler
