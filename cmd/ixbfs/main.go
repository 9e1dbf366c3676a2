// Command ixbfs loads a graph document and prints the breadth-first
// discovery order of its vertices.
//
//	ixbfs demo
//	ixbfs bfs --file graph.yaml --start 0 [--max-depth 2]
//	ixbfs components --file graph.yaml
//
// Every flag can also be set through IXBFS_<FLAG> environment variables or
// a YAML config file passed with --config.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
