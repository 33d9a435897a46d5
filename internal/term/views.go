package term

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/stepviz/alloc"
	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/gridgraph"
	"github.com/katalvlaran/stepviz/linkedlist"
)

// ArrayView renders slots as styled values with a bar of proportional
// height below, one column per slot.
func ArrayView(a *core.Array) string {
	cols := make([]string, a.Len())
	for i, s := range a.Slots {
		st := Style(s.State)
		bar := s.Value
		if bar < 0 {
			bar = 0
		}
		cell := strconv.Itoa(s.Value) + "\n" + strings.Repeat("█\n", min(bar, 20))
		cols[i] = st.Width(4).Align(lipgloss.Center).Render(strings.TrimSuffix(cell, "\n"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// GraphView lists nodes then edges, each styled by its display state.
func GraphView(g *core.Graph) string {
	var b strings.Builder
	for _, n := range g.Nodes() {
		b.WriteString(Style(n.State).Render(fmt.Sprintf("[%s]", label(g, n.ID))))
		b.WriteByte(' ')
	}
	b.WriteByte('\n')
	for _, e := range g.Edges() {
		arrow := "—"
		if e.Kind == core.Directed {
			arrow = "→"
		}
		b.WriteString(Style(e.State).Render(fmt.Sprintf("%s%s%s(%d)", label(g, e.From), arrow, label(g, e.To), e.Weight)))
		b.WriteByte(' ')
	}

	return b.String()
}

func label(g *core.Graph, id core.NodeID) string {
	if n := g.Node(id); n != nil && n.Label != "" {
		return n.Label
	}

	return strconv.Itoa(int(id))
}

// GridView draws each cell two characters wide: walls solid, open cells
// blank, highlighted cells shaded in their state's style. overlay, if
// non-nil, supplies a state for open cells (e.g. path highlights from a
// graph built over the grid).
func GridView(g *gridgraph.Grid, overlay func(i int) core.State) string {
	var b strings.Builder
	for i := 0; i < g.Len(); i++ {
		c := g.Coordinate(i)
		s := g.State(c)
		if overlay != nil && s != core.Wall {
			if o := overlay(i); o != core.None {
				s = o
			}
		}
		switch s {
		case core.Wall:
			b.WriteString(Style(s).Render("██"))
		case core.None:
			b.WriteString("  ")
		default:
			b.WriteString(Style(s).Render("░░"))
		}
		if c.Col == g.Cols-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// ListView renders list nodes as boxes joined by arrows, with addresses.
func ListView(l *linkedlist.List) string {
	var parts []string
	for p := l.Head(); !p.IsNil(); {
		n, err := l.Node(p)
		if err != nil {
			parts = append(parts, "?")
			break
		}
		txt, _ := alloc.Text(l.Heap(), n.Val)
		addr, _ := l.Heap().Addr(p)
		box := Style(n.State).Border(lipgloss.RoundedBorder()).Padding(0, 1).Render(txt + "\n" + StyleDim.Render(addr))
		parts = append(parts, box, "→")
		p = n.Next
	}
	parts = append(parts, "nil")

	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

// HeapTable renders the live records of h as a table.
func HeapTable(h *alloc.Heap) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	var rows [][]string
	for _, r := range h.Records() {
		hx, _ := h.Hex(r.Ptr)
		rows = append(rows, []string{alloc.FormatAddr(r.Offset), strconv.Itoa(r.Size), hx, r.Value.String()})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Addr", "Size", "Bytes", "Value").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		String()
}
