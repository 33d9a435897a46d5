package cli

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/internal/term"
	"github.com/katalvlaran/stepviz/sorting"
)

func newSortCmd(g *globals) *cobra.Command {
	var kind string
	var n int

	cmd := &cobra.Command{
		Use:   "sort [values...]",
		Short: "Animate a sorting algorithm",
		Long:  "Animate bubble, insertion, selection, merge or quick sort over the given integers, or over n random values.",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := g.scene()
			if err != nil {
				return err
			}
			if kind == "" {
				kind = c.Sort
			}
			k, err := sorting.ParseKind(kind)
			if err != nil {
				return err
			}

			values := make([]int, 0, len(args))
			for _, a := range args {
				v, err := strconv.Atoi(a)
				if err != nil {
					return fmt.Errorf("sort: value %q: %w", a, err)
				}
				values = append(values, v)
			}
			if len(values) == 0 {
				r := rand.New(rand.NewSource(c.Seed))
				for i := 0; i < n; i++ {
					values = append(values, 1+r.Intn(15))
				}
			}

			arr := core.NewArray(values...)
			s, err := sorting.New(arr, k, stepOptions(c, loggerFromContext(cmd.Context()))...)
			if err != nil {
				return err
			}

			return play(cmd.Context(), cmd.OutOrStdout(), g, k.String()+" sort", s,
				func() string { return term.ArrayView(arr) })
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "", "bubble|insertion|selection|merge|quick (default from config)")
	cmd.Flags().IntVarP(&n, "n", "n", 12, "number of random values when none are given")

	return cmd
}
