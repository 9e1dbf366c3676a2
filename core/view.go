// File: view.go
// Role: Read-only graph surface handed to traversal visitors.

package core

// View is the read-only subset of Graph. Visitors receive a View so they can
// inspect the graph during a traversal without being able to mutate it.
type View interface {
	VertexCount() int
	EdgeCount() int
	HasVertex(v VertexID) bool
	Neighbors(v VertexID) ([]VertexID, error)
	Degree(v VertexID) (int, error)
}

var _ View = (*Graph)(nil)
