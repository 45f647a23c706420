package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

type algebraResult struct {
	Op     string `json:"op"`
	Result []int  `json:"result"`
	Count  int    `json:"count"`
}

func newAlgebraCmd(g *globalFlags) *cobra.Command {
	var a, b, op string

	c := &cobra.Command{
		Use:     "algebra",
		Short:   "Combine two bitsets with and, or or exclude",
		Example: `  bitsetctl algebra -n 8 --a 1,3,5 --b 3,5,7 --op exclude`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			left, err := g.newSet(a)
			if err != nil {
				return err
			}
			defer left.Release()

			right, err := g.newSet(b)
			if err != nil {
				return err
			}
			defer right.Release()

			switch op {
			case "and":
				err = left.And(right)
			case "or":
				err = left.Or(right)
			case "exclude", "andnot", "diff":
				err = left.Exclude(right)
			default:
				return fmt.Errorf("unknown op %q (want and, or or exclude)", op)
			}
			if err != nil {
				return fmt.Errorf("failed to apply %s: %w", op, err)
			}

			keys, err := left.Keys(nil, 0)
			if err != nil {
				return err
			}
			if keys == nil {
				keys = []int{}
			}

			w := cmd.OutOrStdout()
			if g.json {
				return writeJSON(w, algebraResult{Op: op, Result: keys, Count: len(keys)})
			}

			labelColor.Fprintf(w, "%-10s", "result:")
			keyColor.Fprintln(w, left.String())
			printField(w, "count", len(keys))
			return nil
		},
	}

	c.Flags().StringVar(&a, "a", "", "left operand bits")
	c.Flags().StringVar(&b, "b", "", "right operand bits")
	c.Flags().StringVar(&op, "op", "and", "and | or | exclude")
	return c
}
