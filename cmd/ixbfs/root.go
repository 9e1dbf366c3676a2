package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/ixgraph/bfs"
	"github.com/katalvlaran/ixgraph/core"
	"github.com/katalvlaran/ixgraph/graphfile"
)

// Configuration keys shared by flags, environment, and config file.
const (
	keyConfig   = "config"
	keyVerbose  = "verbose"
	keyFile     = "file"
	keyStart    = "start"
	keyMaxDepth = "max-depth"

	envPrefix = "IXBFS"
)

// app carries per-invocation state shared by all sub-commands.
type app struct {
	v      *viper.Viper
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "ixbfs",
		Short:         "Breadth-first traversal over dense-index graphs",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().String(keyConfig, "", "YAML config file")
	root.PersistentFlags().BoolP(keyVerbose, "v", false, "enable debug logging")

	root.AddCommand(a.newBFSCmd(), a.newComponentsCmd(), a.newDemoCmd())
	return root
}

// init binds flags, environment, and the optional config file, then builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	a.v.SetDefault(keyStart, 0)
	a.v.SetDefault(keyMaxDepth, 0)
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	if path := a.v.GetString(keyConfig); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	logger, err := newLogger(a.v.GetBool(keyVerbose))
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	a.logger = logger
	return nil
}

// newLogger returns a production logger; verbose lowers its level to debug.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

func (a *app) newBFSCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bfs",
		Short: "Print vertices in breadth-first discovery order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			start := core.VertexID(a.v.GetInt(keyStart))
			_, err = bfs.BFS(g, start, printer(cmd.OutOrStdout()),
				bfs.WithMaxDepth(a.v.GetInt(keyMaxDepth)),
				bfs.WithLogger(a.logger),
				bfs.WithTraceContext(cmd.Context()),
			)
			return err
		},
	}
	cmd.Flags().StringP(keyFile, "f", "", "graph document (YAML)")
	cmd.Flags().IntP(keyStart, "s", 0, "start vertex")
	cmd.Flags().Int(keyMaxDepth, 0, "stop expanding beyond this depth (0 = unlimited)")
	return cmd
}

func (a *app) newComponentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "components",
		Short: "Print connected components, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			comps, err := bfs.Components(g, nil,
				bfs.WithLogger(a.logger),
				bfs.WithTraceContext(cmd.Context()),
			)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, c := range comps {
				fmt.Fprintf(out, "Component %d: %v\n", i, c)
			}
			return nil
		},
	}
	cmd.Flags().StringP(keyFile, "f", "", "graph document (YAML)")
	return cmd
}

// newDemoCmd runs the classic triangle walk without any input file.
func (a *app) newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk the built-in triangle graph from vertex 0",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := core.NewGraph()
			g.AddVertices(3)
			for _, e := range []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}} {
				if err := g.AddEdge(e.U, e.V); err != nil {
					return err
				}
			}
			_, err := bfs.BFS(g, 0, printer(cmd.OutOrStdout()), bfs.WithLogger(a.logger))
			return err
		},
	}
}

func (a *app) loadGraph() (*core.Graph, error) {
	path := a.v.GetString(keyFile)
	if path == "" {
		return nil, fmt.Errorf("no graph document: set --%s or %s_FILE", keyFile, envPrefix)
	}
	return graphfile.NewLoader(a.logger).LoadFile(path)
}

// printer reports each discovery as "Visited vertex: N".
func printer(w io.Writer) bfs.Visitor {
	return bfs.VisitorFunc(func(v core.VertexID, _ core.View) {
		fmt.Fprintf(w, "Visited vertex: %d\n", v)
	})
}
