package bfs_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/bfs"
	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/geom"
	"github.com/katalvlaran/stepviz/step"
	"github.com/katalvlaran/stepviz/table"
)

// ladder builds A-B-C-D in a line plus a shortcut A-C and an isolated E.
func ladder(t *testing.T) (*core.Graph, map[string]core.NodeID) {
	t.Helper()
	g := core.NewGraph()
	ids := map[string]core.NodeID{}
	for i, l := range []string{"A", "B", "C", "D", "E"} {
		ids[l] = g.AddNode(l, geom.Pt(float64(i), 0))
	}
	for _, p := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"A", "C"}} {
		_, err := g.AddEdge(ids[p[0]], ids[p[1]], 1, core.Undirected)
		require.NoError(t, err)
	}

	return g, ids
}

func TestBFS_ShortestHopPath(t *testing.T) {
	g, id := ladder(t)
	b := bfs.New(g)
	b.Init(id["A"], id["D"])

	_, err := b.RunToEnd(step.Discard)
	require.NoError(t, err)
	assert.Equal(t, step.Stopped, b.State())
	assert.Zero(t, b.Notifier().Posted())

	nodes, _, err := b.Table().Path(id["D"])
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{id["A"], id["C"], id["D"]}, nodes)

	hops, err := b.Table().Hops(id["D"])
	require.NoError(t, err)
	assert.Equal(t, float64(hops), b.Table().Dist(id["D"]))

	assert.Equal(t, core.Src, g.Node(id["A"]).State)
	assert.Equal(t, core.Dest, g.Node(id["D"]).State)
	assert.Equal(t, core.Path, g.Node(id["C"]).State)
	assert.Equal(t, core.None, g.Node(id["B"]).State)
}

func TestBFS_FullTraversalOrder(t *testing.T) {
	g, id := ladder(t)
	b := bfs.New(g)
	b.Init(id["A"], core.NoNode)

	_, err := b.RunToEnd(nil)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{id["A"], id["B"], id["C"], id["D"]}, b.Order())
	assert.False(t, b.Table().Has(id["E"]))
	assert.Zero(t, b.Notifier().Posted())
}

func TestBFS_Unreachable(t *testing.T) {
	g, id := ladder(t)
	b := bfs.New(g)
	b.Init(id["A"], id["E"])

	_, err := b.RunToEnd(nil)
	require.NoError(t, err)
	assert.Equal(t, step.Stopped, b.State())
	assert.Equal(t, table.ErrUnreachable.Error(), b.Notifier().Text())
	for _, n := range g.Nodes() {
		assert.NotEqual(t, core.Path, n.State, n.Label)
	}
}

func TestBFS_MissingStartRefuses(t *testing.T) {
	g, _ := ladder(t)
	b := bfs.New(g)
	b.Init(42, core.NoNode)

	n, err := b.RunToEnd(nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, step.NotBegun, b.State())
	assert.Equal(t, bfs.ErrStartNotFound.Error(), b.Notifier().Text())
}

func TestBFS_NilGraphIsFatal(t *testing.T) {
	b := bfs.New(nil)
	b.Init(0, core.NoNode)
	err := b.Next(nil)
	require.ErrorIs(t, err, bfs.ErrGraphNil)
}

func TestBFS_DirectedEdgesFollowedForwardOnly(t *testing.T) {
	g := core.NewGraph()
	a := g.AddNode("A", geom.Pt(0, 0))
	b := g.AddNode("B", geom.Pt(1, 0))
	_, err := g.AddEdge(b, a, 1, core.Directed)
	require.NoError(t, err)

	s := bfs.New(g)
	s.Init(a, b)
	_, err = s.RunToEnd(nil)
	require.NoError(t, err)
	assert.Equal(t, table.ErrUnreachable.Error(), s.Notifier().Text())
}

func TestBFS_MaxDepth(t *testing.T) {
	g, id := ladder(t)
	b := bfs.New(g)
	b.SetMaxDepth(1)
	b.Init(id["A"], core.NoNode)

	_, err := b.RunToEnd(nil)
	require.NoError(t, err)
	assert.True(t, b.Table().Has(id["C"]))
	assert.False(t, b.Table().Has(id["D"]))
}

func TestBFS_RestartAfterStop(t *testing.T) {
	g, id := ladder(t)
	b := bfs.New(g)
	b.Init(id["A"], id["D"])

	first, err := b.RunToEnd(nil)
	require.NoError(t, err)
	b.Init(id["A"], id["D"])
	second, err := b.RunToEnd(nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBFS_HopsMatchDistanceOnRandomGraphs(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for round := 0; round < 100; round++ {
		g := core.NewGraph()
		n := 2 + r.Intn(9)
		for i := 0; i < n; i++ {
			g.AddNode("", geom.Pt(float64(i), 0))
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if r.Intn(3) != 0 {
					continue
				}
				kind := core.Undirected
				if r.Intn(3) == 0 {
					kind = core.Directed
				}
				_, err := g.AddEdge(core.NodeID(i), core.NodeID(j), 1, kind)
				require.NoError(t, err)
			}
		}

		b := bfs.New(g)
		b.Init(0, core.NoNode)
		_, err := b.RunToEnd(nil)
		require.NoError(t, err)

		for _, node := range g.Nodes() {
			if !b.Table().Has(node.ID) {
				continue
			}
			hops, err := b.Table().Hops(node.ID)
			require.NoError(t, err)
			assert.Equal(t, float64(hops), b.Table().Dist(node.ID), "round %d node %d", round, node.ID)
		}
	}
}

func TestBFS_TreeEdgesKeepHighlight(t *testing.T) {
	g, id := ladder(t)
	b := bfs.New(g)
	b.Init(id["A"], core.NoNode)

	for b.State() != step.Stopped {
		require.NoError(t, b.Next(nil))
		if b.State() == step.Stopped {
			break
		}
		for _, n := range g.Nodes() {
			e, ok := b.Table().Get(n.ID)
			if !ok || e.Prev == core.NoNode {
				continue
			}
			assert.Contains(t, []core.State{core.Visited, core.Traversing}, g.Edge(e.PrevEdge).State,
				"tree edge into %s after step %d", n.Label, b.Steps())
		}
	}
}
