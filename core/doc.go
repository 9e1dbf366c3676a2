// Package core provides an append-only, undirected in-memory Graph over
// dense integer vertex indices.
//
// Model
//
//   - Vertices are created by AddVertex and numbered 0, 1, 2, ... in call
//     order. They are never removed.
//   - Edges are undirected pairs added by AddEdge. Self-loops and parallel
//     edges are allowed. Edges are never removed.
//   - Every vertex keeps its neighbors in edge-insertion order, which makes
//     every traversal built on top of core fully reproducible.
//
// Self-loops
//
//	AddEdge(v, v) records a single adjacency entry v→v (the loop is listed
//	once in Neighbors(v)). Degree counts the loop twice.
//
// Errors
//
//	The only failure mode is ErrInvalidVertex: an endpoint that AddVertex
//	never returned. It is detected before any mutation, so a failed call
//	leaves the graph untouched. Callers match it with errors.Is.
//
// Concurrency
//
//	Graph carries no locks. Build it from one goroutine; afterwards any
//	number of goroutines may read or traverse it concurrently as long as
//	nobody mutates it.
//
// Methods:
//
//	AddVertex() VertexID                      // O(1)
//	AddVertices(n int) []VertexID             // O(n)
//	AddEdge(u, v VertexID) error              // O(1)
//	HasVertex(v VertexID) bool                // O(1)
//	Neighbors(v VertexID) ([]VertexID, error) // O(deg v)
//	EachNeighbor(v VertexID, fn) error        // O(deg v), no copy
//	Degree(v VertexID) (int, error)           // O(deg v)
//	Vertices() []VertexID                     // O(V)
//	Edges() []Edge                            // O(E)
//	VertexCount(), EdgeCount() int            // O(1)
//	Clone() *Graph                            // O(V+E)
package core
