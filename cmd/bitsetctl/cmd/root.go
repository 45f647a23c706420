package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/hupe1980/bitarray"
)

type globalFlags struct {
	bits    int
	json    bool
	verbose bool
	noColor bool
}

// NewRootCmd builds the bitsetctl command tree.
func NewRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "bitsetctl",
		Short: "Inspect and combine dense bitsets",
		PersistentPreRun: func(*cobra.Command, []string) {
			if g.noColor {
				color.NoColor = true
			}
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().IntVarP(&g.bits, "bits", "n", 64, "bit count of every bitset")
	root.PersistentFlags().BoolVar(&g.json, "json", false, "print JSON instead of text")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "log allocations to stderr")
	root.PersistentFlags().BoolVar(&g.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newKeysCmd(g),
		newAlgebraCmd(g),
		newStatsCmd(g),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (g *globalFlags) options() []bitarray.Option {
	if !g.verbose {
		return nil
	}
	return []bitarray.Option{bitarray.WithLogger(bitarray.NewTextLogger(slog.LevelDebug))}
}

// newSet allocates a bitset of g.bits bits holding keys.
func (g *globalFlags) newSet(list string) (*bitarray.Bitset, error) {
	keys, err := parseKeys(list, g.bits)
	if err != nil {
		return nil, err
	}
	b, err := bitarray.New(g.bits, g.options()...)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate bitset: %w", err)
	}
	for _, k := range keys {
		if err := b.Set(k); err != nil {
			b.Release()
			return nil, fmt.Errorf("failed to set %d: %w", k, err)
		}
	}
	return b, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var (
	labelColor = color.New(color.FgCyan)
	keyColor   = color.New(color.FgGreen)
	warnColor  = color.New(color.FgYellow)
)

func printField(w io.Writer, label string, value any) {
	labelColor.Fprintf(w, "%-10s", label+":")
	fmt.Fprintln(w, value)
}
