// Package bfs provides breadth-first search over a core.Graph with a
// pluggable discovery visitor, returning visit order, distances, and
// parent links.
package bfs

import (
	"fmt"
	"time"

	"github.com/soniakeys/bits"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/katalvlaran/ixgraph/core"
)

// walker encapsulates mutable BFS state. One walker serves one call.
type walker struct {
	graph      *core.Graph
	opts       BFSOptions
	disp       dispatch
	discovered bits.Bits       // one bit per vertex, set on discovery
	queue      []core.VertexID // FIFO frontier
	res        *Result
}

// BFS runs breadth-first search on g starting from start, calling
// vis.DiscoverVertex once for every vertex reachable from start.
//
// A nil vis is treated as NullVisitor. Input errors are reported before any
// traversal work, so on error the visitor has not been called:
// ErrGraphNil for a nil graph, ErrOptionViolation for bad options and
// core.ErrInvalidVertex for a start vertex the graph never created.
func BFS(g *core.Graph, start core.VertexID, vis Visitor, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	ctx, span := startSpan(o.TraceCtx, "bfs.BFS", g, attribute.Int("bfs.start", int(start)))
	if !g.HasVertex(start) {
		err = fmt.Errorf("%w: start %d (vertex count %d)", core.ErrInvalidVertex, start, g.VertexCount())
		endSpan(span, err)
		recordTraversal(ctx, kindSingle, 0, 0, false)
		return nil, err
	}

	began := time.Now()
	w := newWalker(g, vis, o)
	w.traverse(start)
	elapsed := time.Since(began)

	endSpan(span, nil)
	recordTraversal(ctx, kindSingle, elapsed, len(w.res.Order), true)
	o.Logger.Debug("bfs: traversal finished",
		zap.Int("start", int(start)),
		zap.Int("discovered", len(w.res.Order)),
		zap.Int("vertices", g.VertexCount()),
		zap.Duration("elapsed", elapsed),
	)

	return w.res, nil
}

// buildOptions applies opts over DefaultOptions and surfaces the first
// recorded violation.
func buildOptions(opts []Option) (BFSOptions, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}

func newWalker(g *core.Graph, vis Visitor, o BFSOptions) *walker {
	n := g.VertexCount()

	return &walker{
		graph:      g,
		opts:       o,
		disp:       newDispatch(vis),
		discovered: bits.New(n),
		queue:      make([]core.VertexID, 0, n),
		res:        newResult(n),
	}
}

// traverse explores the component of start and returns the index in
// res.Order at which this traversal's discoveries begin.
func (w *walker) traverse(start core.VertexID) int {
	first := len(w.res.Order)
	w.discover(start, NoParent, 0)
	for len(w.queue) > 0 {
		w.expand(w.dequeue())
	}

	return first
}

// discover marks v, records it, notifies the visitor, and enqueues it.
func (w *walker) discover(v, parent core.VertexID, depth int) {
	w.discovered.SetBit(int(v), 1)
	w.res.Depth[v] = depth
	w.res.Parent[v] = parent
	w.res.Order = append(w.res.Order, v)
	w.disp.vis.DiscoverVertex(v, w.graph)
	w.queue = append(w.queue, v)
}

// dequeue pops the front of the frontier.
func (w *walker) dequeue() core.VertexID {
	u := w.queue[0]
	w.queue = w.queue[1:]

	return u
}

// expand scans u's adjacency in insertion order and discovers every
// unseen neighbor that passes the filter and the depth limit.
func (w *walker) expand(u core.VertexID) {
	next := w.res.Depth[u] + 1
	if w.opts.MaxDepth == 0 || next <= w.opts.MaxDepth {
		_ = w.graph.EachNeighbor(u, func(v core.VertexID) {
			if !w.opts.FilterNeighbor(u, v) {
				return
			}
			if w.disp.edge != nil {
				w.disp.edge.ExamineEdge(u, v, w.graph)
			}
			if w.discovered.Bit(int(v)) == 0 {
				w.discover(v, u, next)
			}
		})
	}
	if w.disp.finish != nil {
		w.disp.finish.FinishVertex(u, w.graph)
	}
}
