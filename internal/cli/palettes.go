package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rmera/gofluct/scheme"
)

type palettesOpts struct {
	size int
	typ  string
}

func newPalettesCmd() *cobra.Command {
	var opts palettesOpts
	cmd := &cobra.Command{
		Use:   "palettes",
		Short: "List the available palettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.size < scheme.MinSize || opts.size > scheme.MaxSize {
				return fmt.Errorf("size must be between %d and %d, got %d", scheme.MinSize, scheme.MaxSize, opts.size)
			}
			set := scheme.DefaultPalettes()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tTYPE\tCOLORS")
			for _, name := range set.Names() {
				p, _ := set.Get(name)
				if opts.typ != "" && !strings.EqualFold(opts.typ, p.Type.String()) {
					continue
				}
				cols := p.Colors(opts.size)
				hex := make([]string, len(cols))
				for i, c := range cols {
					hex[i] = c.Hex()
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Name, p.Type, strings.Join(hex, " "))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&opts.size, "size", "s", 5, "number of colors to show")
	cmd.Flags().StringVarP(&opts.typ, "type", "t", "", "only list palettes of this type (sequential, diverging, qualitative)")
	return cmd
}
