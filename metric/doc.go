// Package metric provides Prometheus metrics for compilation runs.
//
// The core metrics cover the compiler's observable behavior: classes
// compiled per run and their outcome, compile failures by error class,
// compile duration, and fromRDF read failures. Exposing the registry over
// HTTP is the embedding application's concern; this package only collects.
package metric
