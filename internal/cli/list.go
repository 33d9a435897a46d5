package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepviz/alloc"
	"github.com/katalvlaran/stepviz/internal/term"
	"github.com/katalvlaran/stepviz/linkedlist"
)

func newListCmd(g *globals) *cobra.Command {
	var op, find string
	var remove int

	cmd := &cobra.Command{
		Use:   "list value [value...]",
		Short: "Animate a heap-backed linked list",
		Long: `Build a singly linked list of the given strings in the toy allocator, then
traverse it looking for --find or reverse it. --remove frees the node at an
index afterwards, together with its string, and prints the heap again.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := g.scene()
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			heap := alloc.New(alloc.WithLogger(logger))
			l := linkedlist.New(heap, stepOptions(c, logger)...)
			for _, a := range args {
				if _, err := l.Push(a); err != nil {
					return err
				}
			}

			var o linkedlist.Op
			switch op {
			case "traverse":
				o = linkedlist.Traverse
			case "reverse":
				o = linkedlist.Reverse
			default:
				return fmt.Errorf("list: unknown op %q", op)
			}
			l.Init(o, find)

			view := func() string { return term.ListView(l) + "\n" + term.HeapTable(heap) }
			if err := play(cmd.Context(), cmd.OutOrStdout(), g, "list "+o.String(), l, view); err != nil {
				return err
			}
			if remove < 0 {
				return nil
			}
			if err := l.RemoveAt(remove); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "after removing index %d:\n%s\n", remove, view())
			return err
		},
	}

	cmd.Flags().StringVar(&op, "op", "traverse", "traverse|reverse")
	cmd.Flags().StringVar(&find, "find", "", "value to look for when traversing")
	cmd.Flags().IntVar(&remove, "remove", -1, "index to remove after the animation")

	return cmd
}
