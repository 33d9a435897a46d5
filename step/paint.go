package step

import "github.com/katalvlaran/stepviz/core"

// SetNode paints n with s and renders it. Endpoints marked Src or Dest keep
// their marker so the viewer never loses track of them.
func SetNode(t Target, n *core.Node, s core.State) {
	if n == nil {
		return
	}
	if n.State == core.Src || n.State == core.Dest {
		t.Render(core.NodeRef(n.ID))
		return
	}
	n.State = s
	t.Render(core.NodeRef(n.ID))
}

// PinNode paints n with s regardless of its current state.
func PinNode(t Target, n *core.Node, s core.State) {
	if n == nil {
		return
	}
	n.State = s
	t.Render(core.NodeRef(n.ID))
}

// SetEdge paints e with s and renders it.
func SetEdge(t Target, e *core.Edge, s core.State) {
	if e == nil {
		return
	}
	e.State = s
	t.Render(core.EdgeRef(e.ID))
}

// SetSlots paints the given slots of a with s and renders each.
func SetSlots(t Target, a *core.Array, s core.State, idx ...int) {
	for _, i := range idx {
		a.Slots[i].State = s
		t.Render(core.SlotRef(i))
	}
}
