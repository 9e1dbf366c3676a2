// Package bfs provides tunable options, result types, and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/ixgraph/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by Result.PathTo for a vertex the traversal never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// NoParent marks the root of a BFS tree and every unreached vertex in Result.Parent.
const NoParent core.VertexID = -1

// Unreached marks vertices that were not discovered in Result.Depth.
const Unreached = -1

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation before any traversal work.
type Option func(*BFSOptions)

// BFSOptions holds parameters that customize BFS execution.
type BFSOptions struct {
	// MaxDepth, if > 0, stops expanding vertices at this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip adjacency entries by returning false.
	// Called for each entry u→v scanned while expanding u.
	FilterNeighbor func(u, v core.VertexID) bool

	// Logger receives debug-level traversal summaries.
	Logger *zap.Logger

	// TraceCtx parents the traversal span. It is never consulted for
	// cancellation: a traversal always runs to completion.
	TraceCtx context.Context

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with:
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - a no-op logger
//   - context.Background() as the span parent.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		MaxDepth:       0,
		FilterNeighbor: func(_, _ core.VertexID) bool { return true },
		Logger:         zap.NewNop(),
		TraceCtx:       context.Background(),
	}
}

// WithMaxDepth stops expansion at the given depth (inclusive).
//
//	d > 0: vertices deeper than d are never discovered
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips adjacency entries for which fn returns false.
func WithFilterNeighbor(fn func(u, v core.VertexID) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithLogger routes traversal summaries to l. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *BFSOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTraceContext parents the traversal span under ctx.
func WithTraceContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.TraceCtx = ctx
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertices in discovery sequence.
//   - Depth: per-vertex distance (in edges) from the start, Unreached otherwise.
//   - Parent: per-vertex predecessor in the BFS tree, NoParent for the root
//     and for unreached vertices.
type Result struct {
	Order  []core.VertexID
	Depth  []int
	Parent []core.VertexID
}

func newResult(n int) *Result {
	r := &Result{
		Order:  make([]core.VertexID, 0, n),
		Depth:  make([]int, n),
		Parent: make([]core.VertexID, n),
	}
	for i := 0; i < n; i++ {
		r.Depth[i] = Unreached
		r.Parent[i] = NoParent
	}

	return r
}

// Reached reports whether v was discovered by the traversal.
func (r *Result) Reached(v core.VertexID) bool {
	return v >= 0 && int(v) < len(r.Depth) && r.Depth[v] != Unreached
}

// PathTo reconstructs the path from the start vertex to dest.
// Returns core.ErrInvalidVertex for an out-of-range dest and ErrNoPath
// if dest was not reached.
func (r *Result) PathTo(dest core.VertexID) ([]core.VertexID, error) {
	if dest < 0 || int(dest) >= len(r.Depth) {
		return nil, fmt.Errorf("%w: %d", core.ErrInvalidVertex, dest)
	}
	if r.Depth[dest] == Unreached {
		return nil, fmt.Errorf("%w to %d", ErrNoPath, dest)
	}
	// build reversed path
	path := make([]core.VertexID, 0, r.Depth[dest]+1)
	for cur := dest; cur != NoParent; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
