package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	fluct "github.com/rmera/gofluct"
	"github.com/rmera/gofluct/chemjson"
)

// analyzeOpts holds the command-line flags for the analyze command.
type analyzeOpts struct {
	output    string // report file, compressed according to its extension
	cpus      int    // goroutines used for the residue pass
	skipSmall bool   // drop residues with fewer than 3 atoms instead of failing
}

func newAnalyzeCmd() *cobra.Command {
	var opts analyzeOpts
	cmd := &cobra.Command{
		Use:   "analyze [trajectory]",
		Short: "Superimpose the residues of a trajectory and save their deviations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			if cmd.Flags().Changed("cpus") {
				cfg.Analysis.Cpus = opts.cpus
			}
			if cmd.Flags().Changed("skip-small") {
				cfg.Analysis.SkipSmallResidues = opts.skipSmall
			}
			cmd.SetContext(withConfig(cmd.Context(), cfg))
			return runAnalyze(cmd, args[0], &opts)
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "save the analysis to this file (.json, .json.zst, .json.gz)")
	cmd.Flags().IntVar(&opts.cpus, "cpus", 0, "goroutines used to fit residues (default from config, all CPUs)")
	cmd.Flags().BoolVar(&opts.skipSmall, "skip-small", false, "skip residues with fewer than 3 atoms")
	return cmd
}

func runAnalyze(cmd *cobra.Command, path string, opts *analyzeOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	A, err := loadAnalysis(ctx, path, true)
	if err != nil {
		return err
	}
	if opts.output != "" {
		if err := writeOutput(opts.output, cmd.OutOrStdout(), func(w io.Writer) error { return chemjson.WriteAnalysis(w, A) }); err != nil {
			return err
		}
		logger.Info("analysis saved", "file", opts.output)
	}
	printSummary(cmd.OutOrStdout(), A)
	prog.done(fmt.Sprintf("Analyzed %d residues and %d atoms over %d frames", len(A.Residues), len(A.Atoms), A.Frames))
	return nil
}

// printSummary writes the trajectory-wide extrema.
func printSummary(w io.Writer, A *fluct.Analysis) {
	e := A.Extrema
	fmt.Fprintf(w, "Frames   : %d\n", A.Frames)
	fmt.Fprintf(w, "Residues : %d\n", len(A.Residues))
	fmt.Fprintf(w, "Atoms    : %d\n", len(A.Atoms))
	rows := []struct {
		name string
		r    fluct.Range
	}{
		{"Residue RMSD", e.ResidueRMSD},
		{"Residue RMSF", e.ResidueRMSF},
		{"Atom RMSD", e.AtomRMSD},
		{"Atom RMSF", e.AtomRMSF},
	}
	for _, row := range rows {
		fmt.Fprintf(w, "%-13s: min %12.6f max %12.6f\n", row.name, row.r.Min, row.r.Max)
	}
}
