package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	fluct "github.com/rmera/gofluct"
	"github.com/rmera/gofluct/chemplot"
)

type plotOpts struct {
	output   string
	kind     string
	title    string
	residues string
}

func newPlotCmd() *cobra.Command {
	var (
		flags outlineFlags
		opts  plotOpts
	)
	cmd := &cobra.Command{
		Use:   "plot [analysis]",
		Short: "Plot deviation series, colored profiles or step populations",
		Long: `Plot an analysis. The kind of plot is chosen with --kind:

  rmsd        RMSD of the given residues along the trajectory
  profile     value of every residue or atom, colored by step
  population  number of residues or atoms in each step

The output format follows the extension of the output file (png, svg, pdf, eps).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(cmd, args[0], &flags, &opts)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "plot.png", "output image")
	cmd.Flags().StringVarP(&opts.kind, "kind", "k", "profile", "rmsd, profile or population")
	cmd.Flags().StringVar(&opts.title, "title", "", "plot title")
	cmd.Flags().StringVarP(&opts.residues, "residues", "r", "", "comma-separated IDs to plot (rmsd) or highlight (profile)")
	return cmd
}

func runPlot(cmd *cobra.Command, path string, flags *outlineFlags, opts *plotOpts) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)
	ids, err := parseIDs(opts.residues)
	if err != nil {
		return err
	}
	A, _, R, err := flags.outlineFor(cmd, path)
	if err != nil {
		return err
	}
	switch strings.ToLower(opts.kind) {
	case "rmsd":
		if len(ids) == 0 {
			ids = residueIDs(A.Residues, 10)
		}
		err = chemplot.DeviationPlot(A, ids, opts.title, opts.output)
	case "profile":
		err = chemplot.ProfilePlot(R, ids, opts.title, opts.output)
	case "population":
		err = chemplot.PopulationPlot(R, opts.title, opts.output)
	default:
		return fmt.Errorf("unknown plot kind %q (want rmsd, profile or population)", opts.kind)
	}
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Saved %s plot to %s", opts.kind, opts.output))
	return nil
}

// parseIDs parses a comma-separated list of non-negative IDs. An empty string gives nil.
func parseIDs(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	ids := make([]int, 0, len(fields))
	for _, f := range fields {
		id, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || id < 0 {
			return nil, fmt.Errorf("invalid ID %q", f)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// residueIDs returns the IDs of the n residues with the largest RMSF, sorted.
func residueIDs(res []*fluct.Residue, n int) []int {
	sorted := append([]*fluct.Residue(nil), res...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].RMSF > sorted[j].RMSF })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	ids := make([]int, len(sorted))
	for i, r := range sorted {
		ids[i] = r.ID
	}
	sort.Ints(ids)
	return ids
}
