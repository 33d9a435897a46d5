// Package term renders stepviz scenes to a terminal with lipgloss and
// implements step.Target for the CLI shell.
package term

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/stepviz/core"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorBlue   = lipgloss.Color("75")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
	colorPink   = lipgloss.Color("205")
)

var (
	// StyleTitle for frame headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleNotice for notifier messages.
	StyleNotice = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
)

var palette = map[core.State]lipgloss.Style{
	core.None:       lipgloss.NewStyle().Foreground(colorWhite),
	core.Traversing: lipgloss.NewStyle().Foreground(colorYellow).Bold(true),
	core.Compare:    lipgloss.NewStyle().Foreground(colorBlue).Bold(true),
	core.Swap:       lipgloss.NewStyle().Foreground(colorRed),
	core.SwapDone:   lipgloss.NewStyle().Foreground(colorGreen),
	core.Moving:     lipgloss.NewStyle().Foreground(colorPink),
	core.Done:       lipgloss.NewStyle().Foreground(colorGreen).Bold(true),
	core.Visited:    lipgloss.NewStyle().Foreground(colorGray),
	core.Path:       lipgloss.NewStyle().Foreground(colorCyan).Bold(true),
	core.AdjNode:    lipgloss.NewStyle().Foreground(colorBlue),
	core.Wall:       lipgloss.NewStyle().Foreground(colorDim),
	core.Src:        lipgloss.NewStyle().Foreground(colorGreen).Bold(true).Underline(true),
	core.Dest:       lipgloss.NewStyle().Foreground(colorRed).Bold(true).Underline(true),
	core.Tree:       lipgloss.NewStyle().Foreground(colorGreen),
	core.Rejected:   lipgloss.NewStyle().Foreground(colorRed).Strikethrough(true),
	core.Cycle:      lipgloss.NewStyle().Foreground(colorRed).Bold(true),
}

// Style returns the lipgloss style used for display state s.
func Style(s core.State) lipgloss.Style {
	if st, ok := palette[s]; ok {
		return st
	}

	return palette[core.None]
}
