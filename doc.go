// Package ixgraph is an in-memory graph toolkit over dense integer vertex
// indices, built around a deterministic breadth-first traversal with a
// pluggable discovery visitor.
//
// Subpackages:
//
//	core/       append-only undirected Graph, VertexID, Edge, read-only View
//	bfs/        breadth-first search, visitor events, Result, Components
//	graphfile/  YAML edge-list documents to and from core.Graph
//	cmd/ixbfs   command-line front end printing discovery order
//
// Quick ASCII example:
//
//	    0───1
//	     \ /
//	      2
//
//	vertices {0,1,2}, edges (0,1),(1,2),(2,0); BFS from 0 visits 0, 1, 2.
//
//	go get github.com/katalvlaran/ixgraph
package ixgraph
