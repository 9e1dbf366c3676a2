// Package bfs provides breadth-first search over a core.Graph with a
// pluggable discovery visitor.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Call Visitor.DiscoverVertex exactly once per reachable vertex, at the
//     moment it turns from undiscovered to discovered.
//   - Optional visitor extensions, detected by type assertion:
//   - EdgeExaminer.ExamineEdge   (every adjacency entry scanned)
//   - VertexFinisher.FinishVertex (after a vertex's adjacency is exhausted)
//   - Returns a Result containing:
//   - Order: discovery sequence
//   - Depth: per-vertex distance from start
//   - Parent: per-vertex predecessor in the BFS tree
//   - Components runs the same engine from every undiscovered vertex.
//
// Determinism
//
//	core.Graph keeps every adjacency list in edge-insertion order and BFS
//	scans it in that order, so vertices at equal distance are discovered in
//	the order their parents' edges were added. Repeating a traversal on an
//	unmodified graph yields the same sequence.
//
// Self-loops and parallel edges
//
//	A neighbor that is already discovered is skipped, so loops and repeated
//	edges never enqueue a vertex twice.
//
// Complexity (V = reachable vertices, E = reachable edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the discovery bitset, the frontier, and Result.
//
// Execution model
//
//	A traversal is synchronous and runs to completion inside one call; it
//	cannot be suspended or cancelled. Traversals never mutate the graph, so
//	several may run concurrently over a graph nobody is writing to.
//
// Usage
//
//	rec := &bfs.Recorder{}
//	res, err := bfs.BFS(g, 0, rec)
//	if err != nil {
//	    // ErrGraphNil, ErrOptionViolation, or core.ErrInvalidVertex
//	}
//
//	// Plain function as visitor, with options:
//	_, err = bfs.BFS(g, 0,
//	    bfs.VisitorFunc(func(v core.VertexID, _ core.View) { fmt.Println(v) }),
//	    bfs.WithMaxDepth(2),
//	    bfs.WithFilterNeighbor(func(u, v core.VertexID) bool { return v != 3 }),
//	    bfs.WithLogger(logger),
//	    bfs.WithTraceContext(ctx),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - core.ErrInvalidVertex   if the start vertex does not belong to the graph.
//
// Every error is reported before the first visitor call.
//
// Telemetry
//
//	Each call runs inside an OpenTelemetry span ("bfs.BFS", "bfs.Components")
//	and feeds the bfs_traversals_total, bfs_traversal_duration_seconds, and
//	bfs_discovered_vertices instruments of the global meter provider.
package bfs
