package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ixgraph/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create an empty graph and three vertices (IDs 0, 1, 2).
	g := core.NewGraph()
	a, b, c := g.AddVertex(), g.AddVertex(), g.AddVertex()

	// 2) Close a triangle.
	_ = g.AddEdge(a, b)
	_ = g.AddEdge(b, c)
	_ = g.AddEdge(c, a)

	// 3) Inspect.
	nb, _ := g.Neighbors(a)
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edges:", g.Edges())
	fmt.Println("Neighbors of 0:", nb)

	// Output:
	// Vertices: [0 1 2]
	// Edges: [(0,1) (1,2) (2,0)]
	// Neighbors of 0: [1 2]
}

// ExampleGraph_AddEdge shows the failure mode for an unknown endpoint.
func ExampleGraph_AddEdge() {
	g := core.NewGraph()
	v := g.AddVertex()

	err := g.AddEdge(v, 5)
	fmt.Println(errors.Is(err, core.ErrInvalidVertex), g.EdgeCount())

	// Output:
	// true 0
}
