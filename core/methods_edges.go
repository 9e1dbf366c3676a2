// File: methods_edges.go
// Role: Edge lifecycle & catalog queries.
//
// Determinism:
//   - Edges() and every adjacency list preserve insertion order.
//
// Policy:
//   - Self-loops are permitted and stored as a single adjacency entry.
//   - Parallel edges are permitted and stored as given.
package core

// AddEdge registers an undirected edge between u and v.
//
// Implementation:
//   - Stage 1: Validate both endpoints; nothing is mutated on failure.
//   - Stage 2: Append the edge to the catalog.
//   - Stage 3: Append v to adj[u] and, unless u == v, u to adj[v].
//
// Errors:
//   - ErrInvalidVertex: if either endpoint was never returned by AddVertex.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddEdge(u, v VertexID) error {
	n := len(g.adj)
	if !g.HasVertex(u) {
		return invalidVertex(u, n)
	}
	if !g.HasVertex(v) {
		return invalidVertex(v, n)
	}

	g.edges = append(g.edges, Edge{U: u, V: v})
	g.adj[u] = append(g.adj[u], v)
	if u != v {
		g.adj[v] = append(g.adj[v], u)
	}

	return nil
}

// EdgeCount returns the number of edges added so far, self-loops and
// parallel edges included.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edges returns a copy of the edge catalog in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}
