// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - The clone keeps vertex IDs, edge order, and adjacency order.

package core

// Clone returns a deep copy of the Graph. Mutating either graph afterwards
// does not affect the other.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		edges: make([]Edge, len(g.edges)),
		adj:   make([][]VertexID, len(g.adj)),
	}
	copy(clone.edges, g.edges)
	for v, nbrs := range g.adj {
		if len(nbrs) == 0 {
			continue
		}
		clone.adj[v] = make([]VertexID, len(nbrs))
		copy(clone.adj[v], nbrs)
	}

	return clone
}
