// Package graphfile loads core.Graph instances from YAML edge-list documents.
//
// Document format:
//
//	vertices: 3        # vertex count; IDs are 0..vertices-1
//	edges:             # undirected pairs, added in this order
//	  - [0, 1]
//	  - [1, 2]
//	  - [2, 0]
//
// Edge order in the document is edge-insertion order in the graph, and
// therefore decides the order in which traversals visit siblings.
package graphfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ixgraph/core"
)

// ErrBadDocument indicates a structurally invalid graph document.
var ErrBadDocument = errors.New("graphfile: bad document")

// MaxVertices is the largest vertex count a document may declare.
const MaxVertices = 1 << 20

// Document is the decoded form of a graph file.
type Document struct {
	Vertices int     `yaml:"vertices"`
	Edges    [][]int `yaml:"edges"`
}

// Loader turns documents into graphs.
type Loader struct {
	logger *zap.Logger
}

// NewLoader returns a Loader logging through l; a nil l disables logging.
func NewLoader(l *zap.Logger) *Loader {
	if l == nil {
		l = zap.NewNop()
	}
	return &Loader{logger: l}
}

// LoadFile opens path and decodes it with Load.
func (ld *Loader) LoadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := ld.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Load decodes a YAML document from r and builds the graph it describes.
func (ld *Loader) Load(r io.Reader) (*core.Graph, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrBadDocument)
		}
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	g, err := Build(doc)
	if err != nil {
		return nil, err
	}
	ld.logger.Debug("graphfile: graph loaded",
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
	)
	return g, nil
}

// Build creates a graph with doc.Vertices vertices and adds doc.Edges in order.
//
// Errors:
//   - ErrBadDocument: vertex count outside [0, MaxVertices] or an edge that is not a pair.
//   - core.ErrInvalidVertex: an edge endpoint outside [0, doc.Vertices).
func Build(doc Document) (*core.Graph, error) {
	if doc.Vertices < 0 {
		return nil, fmt.Errorf("%w: negative vertex count %d", ErrBadDocument, doc.Vertices)
	}
	if doc.Vertices > MaxVertices {
		return nil, fmt.Errorf("%w: vertex count %d exceeds %d", ErrBadDocument, doc.Vertices, MaxVertices)
	}

	g := core.NewGraph(core.WithCapacity(doc.Vertices, len(doc.Edges)))
	g.AddVertices(doc.Vertices)
	for i, e := range doc.Edges {
		if len(e) != 2 {
			return nil, fmt.Errorf("%w: edge #%d has %d endpoints, want 2", ErrBadDocument, i, len(e))
		}
		if err := g.AddEdge(core.VertexID(e[0]), core.VertexID(e[1])); err != nil {
			return nil, fmt.Errorf("graphfile: edge #%d: %w", i, err)
		}
	}

	return g, nil
}

// Encode writes g as a graph document to w. Encode followed by Load
// reproduces g, edge order included.
func Encode(w io.Writer, g *core.Graph) error {
	doc := Document{Vertices: g.VertexCount(), Edges: make([][]int, 0, g.EdgeCount())}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, []int{int(e.U), int(e.V)})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("graphfile: encode: %w", err)
	}
	return enc.Close()
}
