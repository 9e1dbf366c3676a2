// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - AddVertex hands out IDs 0, 1, 2, ... in call order.
//
// Concurrency:
//   - None internal; AddVertex is a mutation and needs an exclusive caller.
package core

// AddVertex appends a new vertex and returns its identifier.
//
// Behavior highlights:
//   - Identifiers increase monotonically from 0.
//   - Always succeeds.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex() VertexID {
	g.adj = append(g.adj, nil)

	return VertexID(len(g.adj) - 1)
}

// AddVertices appends n vertices and returns their identifiers in order.
// n <= 0 adds nothing and returns nil.
func (g *Graph) AddVertices(n int) []VertexID {
	if n <= 0 {
		return nil
	}
	ids := make([]VertexID, n)
	for i := range ids {
		ids[i] = g.AddVertex()
	}

	return ids
}

// HasVertex reports whether v was returned by AddVertex on this graph.
// Complexity: O(1).
func (g *Graph) HasVertex(v VertexID) bool {
	return v >= 0 && int(v) < len(g.adj)
}

// VertexCount returns the number of vertices added so far.
func (g *Graph) VertexCount() int { return len(g.adj) }

// Vertices returns all vertex IDs in ascending order.
func (g *Graph) Vertices() []VertexID {
	out := make([]VertexID, len(g.adj))
	for i := range out {
		out[i] = VertexID(i)
	}

	return out
}
