package bfs

import "github.com/katalvlaran/ixgraph/core"

// Visitor is invoked exactly once per vertex, at the moment the vertex
// moves from undiscovered to discovered.
//
// g is the graph being traversed. Visitors must not mutate it; doing so
// during a traversal is undefined behavior.
type Visitor interface {
	DiscoverVertex(v core.VertexID, g core.View)
}

// VisitorFunc adapts a plain function to Visitor.
type VisitorFunc func(v core.VertexID, g core.View)

// DiscoverVertex calls f(v, g).
func (f VisitorFunc) DiscoverVertex(v core.VertexID, g core.View) { f(v, g) }

// EdgeExaminer is an optional Visitor extension. ExamineEdge is called for
// every adjacency entry u→v accepted by the neighbor filter, before v's
// discovery state is checked.
type EdgeExaminer interface {
	ExamineEdge(u, v core.VertexID, g core.View)
}

// VertexFinisher is an optional Visitor extension. FinishVertex is called
// once all adjacency entries of u have been scanned.
type VertexFinisher interface {
	FinishVertex(u core.VertexID, g core.View)
}

// NullVisitor ignores every event.
type NullVisitor struct{}

// DiscoverVertex does nothing.
func (NullVisitor) DiscoverVertex(core.VertexID, core.View) {}

// Recorder collects discovered vertices in discovery order.
// The zero value is ready to use.
type Recorder struct {
	Order []core.VertexID
}

// DiscoverVertex appends v to r.Order.
func (r *Recorder) DiscoverVertex(v core.VertexID, _ core.View) {
	r.Order = append(r.Order, v)
}

// dispatch resolves the optional extensions once per traversal.
type dispatch struct {
	vis    Visitor
	edge   EdgeExaminer
	finish VertexFinisher
}

func newDispatch(vis Visitor) dispatch {
	if vis == nil {
		vis = NullVisitor{}
	}
	d := dispatch{vis: vis}
	d.edge, _ = vis.(EdgeExaminer)
	d.finish, _ = vis.(VertexFinisher)

	return d
}
