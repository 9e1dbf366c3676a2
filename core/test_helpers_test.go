// Package core_test contains test helpers for ixgraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep fixture construction in one place so every test builds graphs the same way.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ixgraph/core"
)

// Common fixture sizes used across core tests (avoid magic numbers in test bodies).
const (
	NTriangle = 3
	NSquare   = 4
	NChain    = 100
)

// NewTriangle RETURNS the graph from the classic demo: vertices {0,1,2},
// edges (0,1), (1,2), (2,0) in that order.
func NewTriangle(t testing.TB) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	g.AddVertices(NTriangle)
	MustAddEdges(t, g, [][2]core.VertexID{{0, 1}, {1, 2}, {2, 0}})

	return g
}

// MustAddEdges adds every pair in order and FAILS the test on the first error.
func MustAddEdges(t testing.TB, g *core.Graph, pairs [][2]core.VertexID) {
	t.Helper()

	for _, p := range pairs {
		require.NoError(t, g.AddEdge(p[0], p[1]), "AddEdge(%d,%d)", p[0], p[1])
	}
}
