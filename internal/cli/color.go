package cli

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	fluct "github.com/rmera/gofluct"
	"github.com/rmera/gofluct/chemjson"
	"github.com/rmera/gofluct/internal/config"
	"github.com/rmera/gofluct/outline"
	"github.com/rmera/gofluct/scheme"
)

// outlineFlags are the coloring flags shared by the color and plot commands.
type outlineFlags struct {
	mode           string
	boundary       string
	palette        string
	size           int
	filter         int
	frame          int
	fromTrajectory bool
}

func (f *outlineFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.mode, "mode", "m", "", "residue-rmsf, residue-rmsd, atom-rmsf or atom-rmsd")
	cmd.Flags().StringVarP(&f.boundary, "boundary", "b", "", "absolute or relative")
	cmd.Flags().StringVarP(&f.palette, "palette", "p", "", "palette name (see the palettes command)")
	cmd.Flags().IntVarP(&f.size, "size", "s", 0, "number of steps (3 to 7)")
	cmd.Flags().IntVar(&f.filter, "filter", 0, "steps numbered below this are masked")
	cmd.Flags().IntVarP(&f.frame, "frame", "f", 0, "frame used by the RMSD modes")
	cmd.Flags().BoolVarP(&f.fromTrajectory, "trajectory", "t", false, "the input is a trajectory to analyze, not a saved analysis")
}

// apply overrides the outline settings of cfg with the flags that were set.
func (f *outlineFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	fl := cmd.Flags()
	if fl.Changed("mode") {
		cfg.Outline.Mode = f.mode
	}
	if fl.Changed("boundary") {
		cfg.Outline.Boundary = f.boundary
	}
	if fl.Changed("palette") {
		cfg.Outline.Palette = f.palette
	}
	if fl.Changed("size") {
		cfg.Outline.Size = f.size
	}
	if fl.Changed("filter") {
		cfg.Outline.Filter = f.filter
	}
	if fl.Changed("frame") {
		cfg.Outline.Frame = f.frame
	}
}

// outlineFor loads the analysis at path and colors it according to the configuration
// and the flags.
func (f *outlineFlags) outlineFor(cmd *cobra.Command, path string) (*fluct.Analysis, *outline.Outliner, *outline.Result, error) {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)
	f.apply(cmd, &cfg)
	oc, err := cfg.OutlineConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	A, err := loadAnalysis(ctx, path, f.fromTrajectory)
	if err != nil {
		return nil, nil, nil, err
	}
	O, err := outline.New(A, scheme.DefaultPalettes(), oc, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	R, err := O.Recompute()
	if err != nil {
		return nil, nil, nil, err
	}
	if R.Rule.Source == outline.GlobalRange {
		pop := R.Legend.View()
		for i, s := range R.Schemes[0] {
			logger.Debug("step", "number", s.Number, "color", s.Hex(), "range", s.Caption(), "entities", pop[i])
		}
	}
	if R.Legend.Total() > 0 {
		logger.Debug("legend", "colored", R.Legend.Total(), "fullest_step", R.Legend.Mode())
	}
	return A, O, R, nil
}

type colorOpts struct {
	output     string
	timeline   string
	normalized bool // timeline rows as fractions instead of counts
}

func newColorCmd() *cobra.Command {
	var (
		flags outlineFlags
		opts  colorOpts
	)
	cmd := &cobra.Command{
		Use:   "color [analysis]",
		Short: "Color the residues or atoms of an analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runColor(cmd, args[0], &flags, &opts)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "-", "output file, - for stdout")
	cmd.Flags().StringVar(&opts.timeline, "timeline", "", "also save the step populations of every frame to this file")
	cmd.Flags().BoolVar(&opts.normalized, "normalized", false, "save the timeline populations as fractions of the colored entities")
	return cmd
}

func runColor(cmd *cobra.Command, path string, flags *outlineFlags, opts *colorOpts) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)
	_, O, R, err := flags.outlineFor(cmd, path)
	if err != nil {
		return err
	}
	if err := writeOutput(opts.output, cmd.OutOrStdout(), func(w io.Writer) error { return chemjson.WriteOutline(w, R) }); err != nil {
		return err
	}
	if opts.timeline != "" {
		M, err := O.Timeline()
		if err != nil {
			return err
		}
		if opts.normalized {
			M.NormalizeAll()
		}
		err = writeOutput(opts.timeline, cmd.OutOrStdout(), func(w io.Writer) error { return json.NewEncoder(w).Encode(M) })
		if err != nil {
			return err
		}
		logger.Info("timeline saved", "file", opts.timeline)
	}
	if len(R.Unresolved) > 0 {
		logger.Warn("some entities could not be colored", "count", len(R.Unresolved))
	}
	prog.done("Colored " + R.Rule.Level.String() + "s with " + R.Mode.String() + " (" + R.Boundary.String() + ")")
	return nil
}
