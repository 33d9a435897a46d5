package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/stepviz/bfs"
	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/geom"
)

// ExampleBFS finds the fewest-hop route in a small square with a diagonal.
func ExampleBFS() {
	g := core.NewGraph()
	a := g.AddNode("A", geom.Pt(0, 0))
	b := g.AddNode("B", geom.Pt(1, 0))
	c := g.AddNode("C", geom.Pt(1, 1))
	d := g.AddNode("D", geom.Pt(0, 1))
	g.AddEdge(a, b, 1, core.Undirected)
	g.AddEdge(b, c, 1, core.Undirected)
	g.AddEdge(c, d, 1, core.Undirected)
	g.AddEdge(a, c, 1, core.Undirected)

	s := bfs.New(g)
	s.Init(a, c)
	s.RunToEnd(nil)

	nodes, _, _ := s.Table().Path(c)
	for _, id := range nodes {
		fmt.Print(g.Node(id).Label, " ")
	}
	fmt.Println()
	// Output: A C
}
