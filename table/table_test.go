package table_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/geom"
	"github.com/katalvlaran/stepviz/step"
	"github.com/katalvlaran/stepviz/table"
)

func TestTable_Path(t *testing.T) {
	tb := table.New()
	tb.Source(0)
	tb.Set(1, 1, 0, 10)
	tb.Set(2, 3, 1, 11)

	nodes, edges, err := tb.Path(2)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 1, 2}, nodes)
	assert.Equal(t, []core.EdgeID{10, 11}, edges)

	hops, err := tb.Hops(2)
	require.NoError(t, err)
	assert.Equal(t, 2, hops)

	assert.Equal(t, 3.0, tb.Dist(2))
	assert.True(t, math.IsInf(tb.Dist(9), 1))

	_, _, err = tb.Path(9)
	require.ErrorIs(t, err, table.ErrNotDiscovered)

	tb.Reset()
	assert.Zero(t, tb.Len())
}

func TestTable_PredecessorCycle(t *testing.T) {
	tb := table.New()
	tb.Set(0, 0, 2, 0)
	tb.Set(1, 0, 0, 1)
	tb.Set(2, 0, 1, 2)

	_, _, err := tb.Path(1)
	require.ErrorIs(t, err, table.ErrPredecessorCycle)
}

func TestTracer(t *testing.T) {
	g := core.NewGraph()
	a := g.AddNode("A", geom.Pt(0, 0))
	b := g.AddNode("B", geom.Pt(1, 0))
	c := g.AddNode("C", geom.Pt(2, 0))
	ab, _ := g.AddEdge(a, b, 1, core.Undirected)
	bc, _ := g.AddEdge(b, c, 1, core.Undirected)
	g.Node(a).State = core.Src
	g.Node(c).State = core.Dest

	tb := table.New()
	tb.Source(a)
	tb.Set(b, 1, a, ab)
	tb.Set(c, 2, b, bc)

	tr, err := table.NewTracer(g, tb, c)
	require.NoError(t, err)
	assert.Equal(t, 3, tr.Len())

	n := 0
	for {
		done, err := tr.Step(step.Discard)
		require.NoError(t, err)
		if done {
			break
		}
		n++
	}
	assert.Equal(t, 3, n)
	assert.Equal(t, core.Src, g.Node(a).State)
	assert.Equal(t, core.Path, g.Node(b).State)
	assert.Equal(t, core.Dest, g.Node(c).State)
	assert.Equal(t, core.Path, g.Edge(ab).State)
	assert.Equal(t, core.Path, g.Edge(bc).State)
}
