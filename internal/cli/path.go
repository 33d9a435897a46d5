package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepviz/astar"
	"github.com/katalvlaran/stepviz/bellmanford"
	"github.com/katalvlaran/stepviz/bfs"
	"github.com/katalvlaran/stepviz/config"
	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/dfs"
	"github.com/katalvlaran/stepviz/dijkstra"
	"github.com/katalvlaran/stepviz/geom"
	"github.com/katalvlaran/stepviz/internal/term"
	"github.com/katalvlaran/stepviz/maze"
	"github.com/katalvlaran/stepviz/step"
)

func newPathCmd(g *globals) *cobra.Command {
	var algo string

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Animate a path search through a generated maze",
		Long: `Generate a maze from the configured size and seed, then search from its
top-left to its bottom-right room with bfs, dfs, dijkstra or astar.
bellmanford runs on a small directed graph with a negative edge instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := g.scene()
			if err != nil {
				return err
			}
			opts := stepOptions(c, loggerFromContext(cmd.Context()))
			if algo == "bellmanford" {
				return runBellmanFord(cmd.Context(), cmd, g, opts)
			}

			grid, err := carvedMaze(c)
			if err != nil {
				return err
			}
			gv := grid.Grid().ToGraph(1)
			start, end := gv.Node(grid.Entrance()), gv.Node(grid.Exit())
			p, err := pathSearch(algo, c, gv.Graph, start, end, opts)
			if err != nil {
				return err
			}
			overlay := func(i int) core.State {
				id := gv.Node(grid.Grid().Coordinate(i))
				if n := gv.Graph.Node(id); n != nil {
					return n.State
				}
				return core.None
			}

			return play(cmd.Context(), cmd.OutOrStdout(), g, algo, p,
				func() string { return term.GridView(grid.Grid(), overlay) })
		},
	}

	cmd.Flags().StringVarP(&algo, "algo", "a", "astar", "bfs|dfs|dijkstra|astar|bellmanford")

	return cmd
}

// carvedMaze generates the configured maze without animating it.
func carvedMaze(c config.Config) (*maze.Maze, error) {
	m, err := maze.New(c.Maze.Rows, c.Maze.Cols, maze.WithSeed(c.Seed))
	if err != nil {
		return nil, err
	}
	if _, err := m.RunToEnd(nil); err != nil {
		return nil, err
	}

	return m, nil
}

// pathSearch binds the named search to g and initializes it.
func pathSearch(algo string, c config.Config, g *core.Graph, start, end core.NodeID, opts []step.Option) (player, error) {
	switch algo {
	case "bfs":
		s := bfs.New(g, opts...)
		s.Init(start, end)
		return s, nil
	case "dfs":
		s := dfs.New(g, opts...)
		s.Init(start, end)
		return s, nil
	case "dijkstra":
		s := dijkstra.New(g, opts...)
		s.Init(start, end)
		return s, nil
	case "astar":
		k, err := astar.ParseKind(c.Heuristic)
		if err != nil {
			return nil, err
		}
		s, err := astar.New(g, k, opts...)
		if err != nil {
			return nil, err
		}
		s.Init(start, end)
		return s, nil
	}

	return nil, fmt.Errorf("path: unknown algorithm %q", algo)
}

// runBellmanFord animates Bellman-Ford on a fixed directed demo graph.
func runBellmanFord(ctx context.Context, cmd *cobra.Command, g *globals, opts []step.Option) error {
	gr := core.NewGraph()
	ids := map[string]core.NodeID{}
	for i, l := range []string{"S", "A", "B", "C", "T"} {
		ids[l] = gr.AddNode(l, geom.Pt(float64(i), 0))
	}
	for _, e := range []struct {
		u, v string
		w    int64
	}{{"S", "A", 4}, {"S", "B", 5}, {"B", "A", -3}, {"A", "C", 2}, {"C", "T", 1}, {"B", "T", 9}} {
		if _, err := gr.AddEdge(ids[e.u], ids[e.v], e.w, core.Directed); err != nil {
			return err
		}
	}
	b := bellmanford.New(gr, opts...)
	b.Init(ids["S"], ids["T"])

	return play(ctx, cmd.OutOrStdout(), g, "bellmanford", b, func() string { return term.GraphView(gr) })
}
