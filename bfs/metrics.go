package bfs

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/ixgraph/core"
)

// Package-level tracer and meter for traversals.
var (
	tracer = otel.Tracer("ixgraph.bfs")
	meter  = otel.Meter("ixgraph.bfs")
)

// Traversal kinds reported in the "kind" attribute.
const (
	kindSingle     = "single"
	kindComponents = "components"
)

// Metrics for traversal operations.
var (
	traversalTotal     metric.Int64Counter
	traversalLatency   metric.Float64Histogram
	discoveredVertices metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the metrics. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		traversalTotal, err = meter.Int64Counter(
			"bfs_traversals_total",
			metric.WithDescription("Total number of BFS traversals"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		traversalLatency, err = meter.Float64Histogram(
			"bfs_traversal_duration_seconds",
			metric.WithDescription("Duration of BFS traversals"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		discoveredVertices, err = meter.Int64Histogram(
			"bfs_discovered_vertices",
			metric.WithDescription("Number of vertices discovered per traversal"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordTraversal records metrics for one traversal call.
func recordTraversal(ctx context.Context, kind string, duration time.Duration, discovered int, success bool) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.Bool("success", success),
	)

	traversalTotal.Add(ctx, 1, attrs)
	if success {
		traversalLatency.Record(ctx, duration.Seconds(), attrs)
		discoveredVertices.Record(ctx, int64(discovered), attrs)
	}
}

// startSpan opens a traversal span annotated with the graph's size.
func startSpan(ctx context.Context, name string, g *core.Graph, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs,
		attribute.Int("graph.vertices", g.VertexCount()),
		attribute.Int("graph.edges", g.EdgeCount()),
	)
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// endSpan closes span, marking it failed when err is non-nil.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
