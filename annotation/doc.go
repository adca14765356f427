// Package annotation loads the external analyzer's annotation dump.
//
// The analyzer inspects the annotated sources and dumps one JSON document
// describing every class: triples, blank declarations, path annotations,
// member bindings and base references. This package validates the dump
// against an embedded JSON schema, then declares and binds every class in
// a schema registry in two phases so forward references between classes
// resolve. Accessor functions cannot travel through JSON; the caller
// attaches them afterwards by class and member name.
package annotation
