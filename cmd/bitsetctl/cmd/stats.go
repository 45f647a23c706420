package cmd

import (
	"github.com/spf13/cobra"
)

type statsResult struct {
	Bits     int  `json:"bits"`
	Words    int  `json:"words"`
	Count    int  `json:"count"`
	AllSet   bool `json:"all_set"`
	AllClear bool `json:"all_clear"`
}

func newStatsCmd(g *globalFlags) *cobra.Command {
	var (
		set  string
		all  bool
		dump bool
	)

	c := &cobra.Command{
		Use:     "stats",
		Short:   "Summarize a bitset",
		Example: `  bitsetctl stats -n 130 --set 0,64,129 --dump`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := g.newSet(set)
			if err != nil {
				return err
			}
			defer b.Release()

			if all {
				b.SetAll()
			}

			res := statsResult{
				Bits:     b.Len(),
				Words:    b.ArraySize(),
				Count:    b.Count(),
				AllSet:   b.IsAllSet(),
				AllClear: b.IsAllClear(),
			}

			w := cmd.OutOrStdout()
			if g.json {
				return writeJSON(w, res)
			}

			printField(w, "bits", res.Bits)
			printField(w, "words", res.Words)
			printField(w, "count", res.Count)
			printField(w, "all set", res.AllSet)
			printField(w, "all clear", res.AllClear)
			if dump {
				return b.Dump(w)
			}
			return nil
		},
	}

	c.Flags().StringVar(&set, "set", "", "bits to set, e.g. 1,3,10-12")
	c.Flags().BoolVar(&all, "all", false, "set every bit")
	c.Flags().BoolVar(&dump, "dump", false, "print every bit")
	return c
}
