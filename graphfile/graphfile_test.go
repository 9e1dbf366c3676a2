package graphfile_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/ixgraph/bfs"
	"github.com/katalvlaran/ixgraph/core"
	"github.com/katalvlaran/ixgraph/graphfile"
)

const triangleYAML = `
vertices: 3
edges:
  - [0, 1]
  - [1, 2]
  - [2, 0]
`

func TestLoad_Triangle(t *testing.T) {
	ld := graphfile.NewLoader(zaptest.NewLogger(t))

	g, err := ld.Load(strings.NewReader(triangleYAML))
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}}, g.Edges())

	rec := &bfs.Recorder{}
	_, err = bfs.BFS(g, 0, rec)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{0, 1, 2}, rec.Order)
}

func TestLoad_Errors(t *testing.T) {
	ld := graphfile.NewLoader(nil)

	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", "", graphfile.ErrBadDocument},
		{"malformed", "vertices: [", graphfile.ErrBadDocument},
		{"negative count", "vertices: -1", graphfile.ErrBadDocument},
		{"huge count", "vertices: 9223372036854775807", graphfile.ErrBadDocument},
		{"count above limit", fmt.Sprintf("vertices: %d", graphfile.MaxVertices+1), graphfile.ErrBadDocument},
		{"bad arity", "vertices: 2\nedges:\n  - [0, 1, 1]\n", graphfile.ErrBadDocument},
		{"bad endpoint", "vertices: 2\nedges:\n  - [0, 2]\n", core.ErrInvalidVertex},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ld.Load(strings.NewReader(c.doc))
			require.ErrorIs(t, err, c.want)
		})
	}
}

func TestBuild_VertexLimit(t *testing.T) {
	for _, n := range []int{graphfile.MaxVertices + 1, int(^uint(0) >> 1)} {
		g, err := graphfile.Build(graphfile.Document{Vertices: n})
		require.ErrorIs(t, err, graphfile.ErrBadDocument, "vertices=%d", n)
		assert.Nil(t, g)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "g.yaml")
	require.NoError(t, os.WriteFile(path, []byte(triangleYAML), 0o600))

	g, err := graphfile.NewLoader(nil).LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())

	_, err = graphfile.NewLoader(nil).LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestEncode_RoundTrip(t *testing.T) {
	g := core.NewGraph()
	g.AddVertices(4)
	require.NoError(t, g.AddEdge(3, 1))
	require.NoError(t, g.AddEdge(0, 0))

	var buf bytes.Buffer
	require.NoError(t, graphfile.Encode(&buf, g))

	back, err := graphfile.NewLoader(nil).Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.VertexCount(), back.VertexCount())
	assert.Equal(t, g.Edges(), back.Edges())
}
