package bfs_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/ixgraph/bfs"
	"github.com/katalvlaran/ixgraph/core"
)

// The global otel providers delegate only to the first provider installed,
// so every test shares one recorder and one reader.
var (
	telemetryOnce sync.Once
	spanRecorder  *tracetest.SpanRecorder
	metricReader  *sdkmetric.ManualReader
)

func installTelemetry() (*tracetest.SpanRecorder, *sdkmetric.ManualReader) {
	telemetryOnce.Do(func() {
		spanRecorder = tracetest.NewSpanRecorder()
		otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spanRecorder)))

		metricReader = sdkmetric.NewManualReader()
		otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(metricReader)))
	})
	return spanRecorder, metricReader
}

// series identifies one attribute set of a traversal instrument.
type series struct {
	kind    string
	success bool
}

// snapshot holds cumulative counter values and discovered-vertex sums.
type snapshot struct {
	total      map[series]int64
	discovered map[series]int64
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) snapshot {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	s := snapshot{total: map[series]int64{}, discovered: map[series]int64{}}
	for _, sm := range rm.ScopeMetrics {
		if sm.Scope.Name != "ixgraph.bfs" {
			continue
		}
		for _, m := range sm.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Sum[int64]:
				if m.Name != "bfs_traversals_total" {
					continue
				}
				for _, dp := range data.DataPoints {
					s.total[seriesOf(dp.Attributes)] += dp.Value
				}
			case metricdata.Histogram[int64]:
				if m.Name != "bfs_discovered_vertices" {
					continue
				}
				for _, dp := range data.DataPoints {
					s.discovered[seriesOf(dp.Attributes)] += dp.Sum
				}
			}
		}
	}
	return s
}

func seriesOf(set attribute.Set) series {
	kind, _ := set.Value("kind")
	ok, _ := set.Value("success")
	return series{kind: kind.AsString(), success: ok.AsBool()}
}

// TestBFS_Logger verifies the debug summary written through WithLogger.
func TestBFS_Logger(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	g := build(t, 3, [2]core.VertexID{0, 1})

	_, err := bfs.BFS(g, 0, nil, bfs.WithLogger(zap.New(obs)), bfs.WithLogger(nil))
	require.NoError(t, err)

	entries := logs.FilterMessage("bfs: traversal finished").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, 0, fields["start"])
	assert.EqualValues(t, 2, fields["discovered"])
	assert.EqualValues(t, 3, fields["vertices"])
}

// TestBFS_Spans verifies spans are emitted for successful and rejected calls.
func TestBFS_Spans(t *testing.T) {
	sr, _ := installTelemetry()
	before := len(sr.Ended())

	g := build(t, 2, [2]core.VertexID{0, 1})
	ctx := context.Background()

	_, err := bfs.BFS(g, 0, nil, bfs.WithTraceContext(ctx))
	require.NoError(t, err)
	_, err = bfs.BFS(g, 5, nil, bfs.WithTraceContext(ctx))
	require.ErrorIs(t, err, core.ErrInvalidVertex)
	_, err = bfs.Components(g, nil, bfs.WithTraceContext(ctx))
	require.NoError(t, err)

	spans := sr.Ended()[before:]
	require.Len(t, spans, 3)
	assert.Equal(t, "bfs.BFS", spans[0].Name())
	assert.NotEqual(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "bfs.BFS", spans[1].Name())
	assert.Equal(t, codes.Error, spans[1].Status().Code)
	assert.Equal(t, "bfs.Components", spans[2].Name())
}

// TestBFS_Metrics verifies the traversal counter and discovered-vertex
// histogram per kind and outcome. A rejected start is counted as a failed
// traversal and records no histogram sample.
func TestBFS_Metrics(t *testing.T) {
	_, reader := installTelemetry()
	before := collect(t, reader)

	g := build(t, 3, [2]core.VertexID{0, 1})
	_, err := bfs.BFS(g, 0, nil)
	require.NoError(t, err)
	_, err = bfs.BFS(g, 7, nil)
	require.ErrorIs(t, err, core.ErrInvalidVertex)
	_, err = bfs.Components(g, nil)
	require.NoError(t, err)

	after := collect(t, reader)
	delta := func(m func(snapshot) map[series]int64, s series) int64 {
		return m(after)[s] - m(before)[s]
	}
	total := func(s snapshot) map[series]int64 { return s.total }
	discovered := func(s snapshot) map[series]int64 { return s.discovered }

	assert.EqualValues(t, 1, delta(total, series{"single", true}))
	assert.EqualValues(t, 1, delta(total, series{"single", false}))
	assert.EqualValues(t, 1, delta(total, series{"components", true}))
	assert.EqualValues(t, 0, delta(total, series{"components", false}))

	assert.EqualValues(t, 2, delta(discovered, series{"single", true}))
	assert.EqualValues(t, 0, delta(discovered, series{"single", false}))
	assert.EqualValues(t, 3, delta(discovered, series{"components", true}))
}
