package bellmanford_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/bellmanford"
	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/dijkstra"
	"github.com/katalvlaran/stepviz/geom"
	"github.com/katalvlaran/stepviz/step"
	"github.com/katalvlaran/stepviz/table"
)

type arc struct {
	u, v int
	w    int64
}

func build(t *testing.T, n int, arcs []arc, kind core.EdgeKind) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddNode(string(rune('A'+i)), geom.Pt(float64(i), 0))
	}
	for _, a := range arcs {
		_, err := g.AddEdge(core.NodeID(a.u), core.NodeID(a.v), a.w, kind)
		require.NoError(t, err)
	}

	return g
}

func TestBellmanFord_NegativeEdgeNoCycle(t *testing.T) {
	// A→B 4, A→C 5, C→B -3, B→D 2
	g := build(t, 4, []arc{{0, 1, 4}, {0, 2, 5}, {2, 1, -3}, {1, 3, 2}}, core.Directed)
	b := bellmanford.New(g)
	b.Init(0, 3)

	n, err := b.RunToEnd(step.Discard)
	require.NoError(t, err)
	assert.Zero(t, b.Notifier().Posted())
	assert.Equal(t, 4.0, b.Table().Dist(3))

	nodes, _, err := b.Table().Path(3)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 2, 1, 3}, nodes)
	assert.Equal(t, core.Path, g.Node(2).State)

	// seed + V passes × E edges + 4 path nodes
	assert.Equal(t, 1+4*4+4, n)
}

func TestBellmanFord_NegativeCycle(t *testing.T) {
	// A→B 1, B→C -2, C→D 1, D→B -1 : cycle B→C→D→B weighs -2
	g := build(t, 4, []arc{{0, 1, 1}, {1, 2, -2}, {2, 3, 1}, {3, 1, -1}}, core.Directed)
	b := bellmanford.New(g)
	b.Init(0, core.NoNode)

	_, err := b.RunToEnd(nil)
	require.NoError(t, err)
	assert.Equal(t, bellmanford.ErrNegativeCycle.Error(), b.Notifier().Text())

	cyc := b.Cycle()
	require.Len(t, cyc, 3)
	assert.ElementsMatch(t, []core.NodeID{1, 2, 3}, cyc)
	for i, u := range cyc {
		v := cyc[(i+1)%len(cyc)]
		found := false
		for _, e := range g.Out(u) {
			if e.To == v {
				found = true
			}
		}
		assert.True(t, found, "no edge %d→%d", u, v)
		assert.Equal(t, core.Cycle, g.Node(u).State)
	}
	assert.Equal(t, core.Src, g.Node(0).State)
	assert.Equal(t, core.None, g.Edge(0).State)
}

func TestBellmanFord_UndirectedRefuses(t *testing.T) {
	g := build(t, 2, []arc{{0, 1, 1}}, core.Undirected)
	b := bellmanford.New(g)
	b.Init(0, 1)

	n, err := b.RunToEnd(nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, step.NotBegun, b.State())
	assert.Equal(t, bellmanford.ErrUndirected.Error(), b.Notifier().Text())
}

func TestBellmanFord_Unreachable(t *testing.T) {
	g := build(t, 3, []arc{{0, 1, 1}, {2, 1, 1}}, core.Directed)
	b := bellmanford.New(g)
	b.Init(0, 2)

	_, err := b.RunToEnd(nil)
	require.NoError(t, err)
	assert.Equal(t, table.ErrUnreachable.Error(), b.Notifier().Text())
	assert.Nil(t, b.Cycle())
}

func TestBellmanFord_CycleUnreachableFromSourceIgnored(t *testing.T) {
	g := build(t, 3, []arc{{1, 2, -5}, {2, 1, 1}}, core.Directed)
	b := bellmanford.New(g)
	b.Init(0, core.NoNode)

	_, err := b.RunToEnd(nil)
	require.NoError(t, err)
	assert.Zero(t, b.Notifier().Posted())
	assert.Equal(t, 1, b.Table().Len())
}

func TestBellmanFord_MatchesDijkstraOnNonNegativeGraphs(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for round := 0; round < 100; round++ {
		n := 2 + r.Intn(7)
		var arcs []arc
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if u != v && r.Intn(3) == 0 {
					arcs = append(arcs, arc{u, v, int64(r.Intn(10))})
				}
			}
		}
		g := build(t, n, arcs, core.Directed)

		b := bellmanford.New(g)
		b.Init(0, core.NoNode)
		_, err := b.RunToEnd(nil)
		require.NoError(t, err)
		require.Zero(t, b.Notifier().Posted(), "round %d", round)

		d := dijkstra.New(g)
		d.Init(0, core.NoNode)
		_, err = d.RunToEnd(nil)
		require.NoError(t, err)

		for _, node := range g.Nodes() {
			assert.Equal(t, d.Table().Dist(node.ID), b.Table().Dist(node.ID), "round %d node %d", round, node.ID)
		}
	}
}
