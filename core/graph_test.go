package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/geom"
)

// buildSquare constructs A–B–C–D–A with one directed diagonal A→C.
func buildSquare(t *testing.T) (*core.Graph, []core.NodeID) {
	t.Helper()
	g := core.NewGraph()
	ids := []core.NodeID{
		g.AddNode("A", geom.Pt(0, 0)),
		g.AddNode("B", geom.Pt(1, 0)),
		g.AddNode("C", geom.Pt(1, 1)),
		g.AddNode("D", geom.Pt(0, 1)),
	}
	for i := range ids {
		_, err := g.AddEdge(ids[i], ids[(i+1)%4], int64(i+1), core.Undirected)
		require.NoError(t, err)
	}
	_, err := g.AddEdge(ids[0], ids[2], 9, core.Directed)
	require.NoError(t, err)

	return g, ids
}

func TestGraph_AddAndQuery(t *testing.T) {
	g, ids := buildSquare(t)
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 5, g.EdgeCount())
	assert.True(t, g.HasKind(core.Directed))
	assert.True(t, g.HasKind(core.Undirected))

	// A: edges to B, D (undirected) and C (directed)
	assert.Len(t, g.Out(ids[0]), 3)
	// C: edges to B and D only; the directed A→C does not leave C
	out := g.Out(ids[2])
	require.Len(t, out, 2)
	for _, e := range out {
		assert.Equal(t, core.Undirected, e.Kind)
	}

	id, ok := g.Lookup("C")
	assert.True(t, ok)
	assert.Equal(t, ids[2], id)
	_, ok = g.Lookup("Z")
	assert.False(t, ok)
}

func TestGraph_Errors(t *testing.T) {
	g := core.NewGraph()
	a := g.AddNode("A", geom.Point{})

	_, err := g.AddEdge(a, 42, 1, core.Undirected)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.AddEdge(a, a, 1, core.Undirected)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
	require.ErrorIs(t, g.RemoveEdge(7), core.ErrEdgeNotFound)
	require.ErrorIs(t, g.RemoveNode(7), core.ErrNodeNotFound)
}

func TestGraph_RemoveNodeDropsEdges(t *testing.T) {
	g, ids := buildSquare(t)
	require.NoError(t, g.RemoveNode(ids[0]))
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.Len(t, g.Out(ids[1]), 1)
	assert.Nil(t, g.Node(ids[0]))
}

func TestGraph_Settle(t *testing.T) {
	g, ids := buildSquare(t)
	g.Node(ids[0]).State = core.Src
	g.Node(ids[1]).State = core.Traversing
	g.Node(ids[2]).State = core.Path
	g.Edges()[0].State = core.Compare

	g.Settle(core.Src, core.Path)
	assert.Equal(t, core.Src, g.Node(ids[0]).State)
	assert.Equal(t, core.None, g.Node(ids[1]).State)
	assert.Equal(t, core.Path, g.Node(ids[2]).State)
	assert.Equal(t, core.None, g.Edges()[0].State)

	g.ResetStates()
	assert.Equal(t, core.None, g.Node(ids[0]).State)
}

func TestArray(t *testing.T) {
	a := core.NewArray(3, 1, 2)
	assert.Equal(t, 3, a.Len())
	a.Swap(0, 1)
	assert.Equal(t, []int{1, 3, 2}, a.Values())
	require.NoError(t, a.Set(2, 9))
	require.ErrorIs(t, a.Set(5, 0), core.ErrIndexOutOfRange)
	a.Slots[0].State = core.Compare
	a.ResetStates()
	assert.Equal(t, core.None, a.Slots[0].State)
}

func TestStateAndRefStrings(t *testing.T) {
	assert.Equal(t, "SwapDone", core.SwapDone.String())
	assert.Equal(t, "State(99)", core.State(99).String())
	assert.Equal(t, "node#3", core.NodeRef(3).String())
	assert.Equal(t, "cell#12", core.CellRef(12).String())
	assert.Equal(t, "directed", core.Directed.String())
}
