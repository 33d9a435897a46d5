package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepviz/internal/term"
	"github.com/katalvlaran/stepviz/maze"
)

func newMazeCmd(g *globals) *cobra.Command {
	var rows, cols int

	cmd := &cobra.Command{
		Use:   "maze",
		Short: "Animate randomized-Kruskal maze carving",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := g.scene()
			if err != nil {
				return err
			}
			if rows > 0 {
				c.Maze.Rows = rows
			}
			if cols > 0 {
				c.Maze.Cols = cols
			}
			m, err := maze.New(c.Maze.Rows, c.Maze.Cols,
				maze.WithSeed(c.Seed),
				maze.WithStepOptions(stepOptions(c, loggerFromContext(cmd.Context()))...))
			if err != nil {
				return err
			}

			return play(cmd.Context(), cmd.OutOrStdout(), g, "maze", m,
				func() string { return term.GridView(m.Grid(), nil) })
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 0, "rooms per column (default from config)")
	cmd.Flags().IntVar(&cols, "cols", 0, "rooms per row (default from config)")

	return cmd
}
