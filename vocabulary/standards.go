package vocabulary

// Standard Vocabulary IRIs
//
// These constants provide commonly used W3C and semantic web standard IRIs
// and the default prefix bindings installed by NewNamespaces. Annotated
// schemas reference these vocabularies by prefixed name; domain namespaces
// (spatial, maths, vom, ...) come from the run configuration.
//
// References:
// - RDF: https://www.w3.org/TR/rdf11-concepts/
// - RDFS: https://www.w3.org/TR/rdf-schema/
// - OWL: https://www.w3.org/TR/owl2-overview/
// - Dublin Core: https://www.dublincore.org/specifications/dublin-core/dcmi-terms/

// Base IRIs for the standard vocabularies
const (
	RDFBase  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSBase = "http://www.w3.org/2000/01/rdf-schema#"
	XSDBase  = "http://www.w3.org/2001/XMLSchema#"
	OWLBase  = "http://www.w3.org/2002/07/owl#"
	DCBase   = "http://purl.org/dc/terms/"
)

// RDF Standard IRIs
const (
	// RdfType relates a resource to its class.
	RdfType = RDFBase + "type"

	// RdfFirst and RdfRest build RDF collection lists.
	RdfFirst = RDFBase + "first"
	RdfRest  = RDFBase + "rest"
	RdfNil   = RDFBase + "nil"
)

// RDF Schema Standard IRIs
const (
	// RdfsLabel provides a human-readable name for a resource.
	RdfsLabel = RDFSBase + "label"

	// RdfsComment provides a description of a resource.
	RdfsComment = RDFSBase + "comment"

	// RdfsSubClassOf relates a class to its superclass.
	RdfsSubClassOf = RDFSBase + "subClassOf"
)

// OWL Standard IRIs
const (
	// OwlSameAs indicates that two IRI references refer to the same entity.
	OwlSameAs = OWLBase + "sameAs"
)

// standardPrefixes are the default bindings installed by NewNamespaces.
var standardPrefixes = map[string]string{
	"rdf":  RDFBase,
	"rdfs": RDFSBase,
	"xsd":  XSDBase,
	"owl":  OWLBase,
	"dc":   DCBase,
}
