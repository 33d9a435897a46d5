package cli

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/geom"
	"github.com/katalvlaran/stepviz/internal/term"
	"github.com/katalvlaran/stepviz/prim_kruskal"
)

func newMSTCmd(g *globals) *cobra.Command {
	var method string
	var n int

	cmd := &cobra.Command{
		Use:   "mst",
		Short: "Animate Kruskal or Prim on a random geometric graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := g.scene()
			if err != nil {
				return err
			}
			if method == "" {
				method = c.MST
			}
			m, err := prim_kruskal.ParseMethod(method)
			if err != nil {
				return err
			}

			gr := randomGeometric(rand.New(rand.NewSource(c.Seed)), n)
			mst, err := prim_kruskal.New(gr, m, stepOptions(c, loggerFromContext(cmd.Context()))...)
			if err != nil {
				return err
			}
			mst.Init(core.NoNode)

			if err := play(cmd.Context(), cmd.OutOrStdout(), g, m.String(), mst, func() string {
				return term.GraphView(gr)
			}); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "tree weight %d over %d edges\n", mst.Weight(), len(mst.Tree()))
			return err
		},
	}

	cmd.Flags().StringVarP(&method, "method", "m", "", "kruskal|prim (default from config)")
	cmd.Flags().IntVarP(&n, "n", "n", 8, "number of nodes")

	return cmd
}

// randomGeometric places n labelled nodes on a 10×10 board and joins each
// to its three nearest neighbors, weighted by rounded distance.
func randomGeometric(r *rand.Rand, n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddNode(string(rune('A'+i%26)), geom.Pt(r.Float64()*10, r.Float64()*10))
	}
	nodes := g.Nodes()
	seen := map[[2]core.NodeID]bool{}
	for _, u := range nodes {
		for k := 0; k < 3; k++ {
			var best *core.Node
			for _, v := range nodes {
				key := [2]core.NodeID{min(u.ID, v.ID), max(u.ID, v.ID)}
				if v.ID == u.ID || seen[key] {
					continue
				}
				if best == nil || geom.Dist(u.Pos, v.Pos) < geom.Dist(u.Pos, best.Pos) {
					best = v
				}
			}
			if best == nil {
				break
			}
			seen[[2]core.NodeID{min(u.ID, best.ID), max(u.ID, best.ID)}] = true
			_, _ = g.AddEdge(u.ID, best.ID, int64(geom.Dist(u.Pos, best.Pos)+0.5)+1, core.Undirected)
		}
	}

	return g
}
