package mapping

import (
	"github.com/BMBF-ARVIDA/arivda-preprocessor/graph"
)

// blankRegistry allocates and reuses blank node handles scoped to one
// generation call. The first reference to an identifier allocates a fresh
// store-level blank node; later references within the same call return the
// same handle. Registries are never shared across calls or between a
// reader and a writer.
type blankRegistry struct {
	store graph.Store
	nodes map[string]graph.Node
}

func newBlankRegistry(store graph.Store) *blankRegistry {
	return &blankRegistry{store: store, nodes: make(map[string]graph.Node)}
}

// allocate returns the node for id, creating it on first use.
func (r *blankRegistry) allocate(id string) graph.Node {
	if n, ok := r.nodes[id]; ok {
		return n
	}
	n := r.store.NewBlankNode()
	r.nodes[id] = n
	return n
}
