// File: methods_adjacent.go
// Role: Adjacency queries used by traversals.
//
// Determinism:
//   - Neighbors are reported in edge-insertion order; traversal order
//     among siblings depends on this and nothing else.
package core

// Neighbors returns a copy of v's adjacency list in edge-insertion order.
// A self-loop appears once; parallel edges appear once per edge.
//
// Errors:
//   - ErrInvalidVertex: if v is not a vertex of this graph.
//
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v VertexID) ([]VertexID, error) {
	if !g.HasVertex(v) {
		return nil, invalidVertex(v, len(g.adj))
	}
	out := make([]VertexID, len(g.adj[v]))
	copy(out, g.adj[v])

	return out, nil
}

// EachNeighbor calls fn for every adjacency entry of v in insertion order
// without copying the list. fn must not mutate the graph.
//
// Errors:
//   - ErrInvalidVertex: if v is not a vertex of this graph.
func (g *Graph) EachNeighbor(v VertexID, fn func(w VertexID)) error {
	if !g.HasVertex(v) {
		return invalidVertex(v, len(g.adj))
	}
	for _, w := range g.adj[v] {
		fn(w)
	}

	return nil
}

// Degree returns the undirected degree of v. A self-loop contributes 2,
// matching the usual handshake convention.
//
// Errors:
//   - ErrInvalidVertex: if v is not a vertex of this graph.
func (g *Graph) Degree(v VertexID) (int, error) {
	if !g.HasVertex(v) {
		return 0, invalidVertex(v, len(g.adj))
	}
	d := len(g.adj[v])
	for _, w := range g.adj[v] {
		if w == v {
			d++
		}
	}

	return d, nil
}
