// Package errors provides standardized error handling patterns for the
// mapping compiler.
//
// # Overview
//
// The package implements a three-class error classification system:
// Transient (temporary, caller may retry the whole operation), Invalid
// (bad schema or graph content, non-retryable), and Fatal (unrecoverable,
// stop the compilation run).
//
// The classification enables the compiler's partial-run mode to distinguish
// failures that abort one class from failures that abort the run, without
// error string matching. It integrates with Go's standard error handling,
// supporting errors.Is(), errors.As() and wrapping chains.
//
// # Error categories
//
//   - Schema construction: ErrConflictingPathModes, ErrUndeclaredBlank,
//     ErrMixedBindingTriples, ErrUnknownMember and friends. Always wrapped
//     in a SchemaError naming the offending class and member.
//   - Generated readers: ErrNoMatch when a required triple pattern has no
//     matching statement, ErrDecode when a matched node cannot be converted
//     into the member's value type. Reported to the immediate caller; never
//     treated as catastrophic for the run.
//   - Configuration: ErrInvalidConfig, ErrMissingConfig. Fatal: a run
//     without a usable configuration cannot proceed.
//
// # Quick Start
//
// Wrap errors with component context:
//
//	if err := registry.Bind(decl); err != nil {
//	    return errors.Wrap(err, "Compiler", "Compile", "binding class bodies")
//	}
//
// Identify schema failures:
//
//	var se *errors.SchemaError
//	if errors.As(err, &se) {
//	    log.Error("schema rejected", "class", se.Class, "member", se.Member)
//	}
//
// Validity-triggered skips during toRDF are not errors and never appear in
// these chains.
package errors
