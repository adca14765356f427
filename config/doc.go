// Package config defines the per-run configuration of the mapping compiler.
//
// A Config carries everything one compilation run needs beyond the schema
// registry itself: the namespace prefix table, the base URI that uid-mode
// paths resolve against, prolog/epilog hooks handed to the renderer, the
// dispatch strategy, and the partial-run policy.
//
// Configuration is explicit: a Config value is loaded once (JSON or YAML),
// validated, and threaded through the compiler. Nothing in this package or
// its consumers reads configuration from globals.
package config
