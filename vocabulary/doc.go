// Package vocabulary provides namespace prefix tables and standard W3C IRIs
// for the mapping compiler.
//
// # Prefix expansion
//
// Annotated schemas refer to predicates and types by prefixed name
// (e.g. "rdf:type", "spatial:Rotation3D"). A Namespaces table expands
// prefixed names to full IRIs at schema-compile time. Expansion of an
// unknown prefix is a hard error, never a silent pass-through: a schema
// that survives compilation contains only fully expanded IRIs.
//
// Tables are explicit per-compilation-run values threaded through the
// compiler. There is no ambient global registry; two runs with different
// prefix tables never interfere.
//
// # Standard vocabularies
//
// standards.go carries IRI constants and default prefix bindings for the
// W3C vocabularies that annotated schemas commonly reference (RDF, RDFS,
// XSD, OWL, Dublin Core).
package vocabulary
