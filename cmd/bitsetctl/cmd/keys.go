package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/bitarray"
)

type keysResult struct {
	Keys      []int `json:"keys"`
	Cursor    int   `json:"cursor"`
	Exhausted bool  `json:"exhausted"`
}

func newKeysCmd(g *globalFlags) *cobra.Command {
	var (
		set     string
		cursor  int
		maxKeys int
	)

	c := &cobra.Command{
		Use:   "keys",
		Short: "Enumerate set bits one page at a time",
		Example: `  bitsetctl keys -n 130 --set 0,64,129 --max 2
  bitsetctl keys -n 130 --set 0,64,129 --max 2 --cursor 65`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := g.newSet(set)
			if err != nil {
				return err
			}
			defer b.Release()

			cur := bitarray.Cursor(cursor)
			keys, err := b.Keys(&cur, maxKeys)
			if err != nil {
				return fmt.Errorf("failed to enumerate keys: %w", err)
			}

			res := keysResult{
				Keys:      keys,
				Cursor:    int(cur),
				Exhausted: cur.Exhausted(b.Len()),
			}
			if res.Keys == nil {
				res.Keys = []int{}
			}

			w := cmd.OutOrStdout()
			if g.json {
				return writeJSON(w, res)
			}

			labelColor.Fprintf(w, "%-10s", "keys:")
			keyColor.Fprintln(w, res.Keys)
			if res.Exhausted {
				printField(w, "cursor", warnColor.Sprintf("%d (exhausted)", res.Cursor))
			} else {
				printField(w, "cursor", res.Cursor)
			}
			return nil
		},
	}

	c.Flags().StringVar(&set, "set", "", "bits to set, e.g. 1,3,10-12")
	c.Flags().IntVar(&cursor, "cursor", 0, "resume position returned by a previous call")
	c.Flags().IntVar(&maxKeys, "max", 0, "maximum keys per page (0 = unbounded)")
	return c
}
