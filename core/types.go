// Package core defines the central Graph, VertexID, and Edge types
// and provides the primitives for building and querying undirected graphs
// over dense integer vertex indices.
//
// This file declares VertexID, Edge, Graph, GraphOption, the sentinel
// error, and the NewGraph constructor.
//
// Errors:
//
//	ErrInvalidVertex - a vertex ID was never returned by AddVertex on this graph.
package core

import (
	"errors"
	"fmt"
)

// ErrInvalidVertex indicates an operation referenced a vertex ID that this
// graph never created.
var ErrInvalidVertex = errors.New("core: invalid vertex")

// VertexID is a dense vertex index in the range [0, VertexCount()).
type VertexID int

// Edge is an undirected adjacency between two vertices.
// U == V denotes a self-loop.
type Edge struct {
	U VertexID
	V VertexID
}

// String renders the edge as "(u,v)".
func (e Edge) String() string { return fmt.Sprintf("(%d,%d)", e.U, e.V) }

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes vertex and edge storage.
// Negative hints are ignored. Capacity has no effect on semantics.
func WithCapacity(vertices, edges int) GraphOption {
	return func(g *Graph) {
		if vertices > 0 {
			g.adj = make([][]VertexID, 0, vertices)
		}
		if edges > 0 {
			g.edges = make([]Edge, 0, edges)
		}
	}
}

// Graph is an undirected, append-only graph.
//
// Vertices are never removed and edges are never deleted, so every VertexID
// handed out by AddVertex stays valid for the lifetime of the Graph.
// adj[u] lists the neighbors of u in the order their edges were added.
//
// Graph has no internal locking: at most one goroutine may mutate it, and
// concurrent readers are safe only while no writer is active.
type Graph struct {
	edges []Edge       // insertion order
	adj   [][]VertexID // vertex -> neighbors, insertion order
}

// NewGraph creates an empty Graph.
// Complexity: O(1) plus any capacity requested by options.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// invalidVertex wraps ErrInvalidVertex with the offending id and the
// current vertex count.
func invalidVertex(v VertexID, n int) error {
	return fmt.Errorf("%w: %d (vertex count %d)", ErrInvalidVertex, v, n)
}
