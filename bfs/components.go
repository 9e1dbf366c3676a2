package bfs

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/ixgraph/core"
)

// Components partitions g into connected components by running BFS from
// every still-undiscovered vertex in ascending ID order. Each component is
// listed in discovery order, and vis sees every vertex exactly once.
//
// WithMaxDepth is rejected with ErrOptionViolation: a depth-bounded sweep
// would not yield components. A FilterNeighbor that is not symmetric yields
// reachability classes rather than components.
func Components(g *core.Graph, vis Visitor, opts ...Option) ([][]core.VertexID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if o.MaxDepth > 0 {
		return nil, fmt.Errorf("%w: MaxDepth is not supported by Components", ErrOptionViolation)
	}

	ctx, span := startSpan(o.TraceCtx, "bfs.Components", g)
	began := time.Now()

	w := newWalker(g, vis, o)
	var comps [][]core.VertexID
	for v, n := 0, g.VertexCount(); v < n; v++ {
		if w.discovered.Bit(v) == 1 {
			continue
		}
		first := w.traverse(core.VertexID(v))
		comp := make([]core.VertexID, len(w.res.Order)-first)
		copy(comp, w.res.Order[first:])
		comps = append(comps, comp)
	}
	elapsed := time.Since(began)

	endSpan(span, nil)
	recordTraversal(ctx, kindComponents, elapsed, len(w.res.Order), true)
	o.Logger.Debug("bfs: components computed",
		zap.Int("components", len(comps)),
		zap.Int("vertices", g.VertexCount()),
		zap.Duration("elapsed", elapsed),
	)

	return comps, nil
}
