package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rmera/gofluct/internal/config"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the gofluct CLI with the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree. Results go to out, logs to errw.
func NewRootCommand(out, errw io.Writer) *cobra.Command {
	var (
		verbose    bool
		configPath string
	)
	root := &cobra.Command{
		Use:          "gofluct",
		Short:        "gofluct measures and colors the structural fluctuation of trajectories",
		Long:         `gofluct superimposes every residue of a molecular trajectory on its first frame, computes per-residue and per-atom deviations and fluctuations, and quantizes them into colored steps.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(errw, level)
			cfg := config.Default()
			if configPath != "" {
				var err error
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
				logger.Debug("configuration loaded", "file", configPath)
			}
			ctx := withConfig(withLogger(cmd.Context(), logger), cfg)
			cmd.SetContext(ctx)
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errw)
	root.SetVersionTemplate(fmt.Sprintf("gofluct %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML configuration file")

	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newColorCmd())
	root.AddCommand(newPlotCmd())
	root.AddCommand(newPalettesCmd())
	root.AddCommand(newConfigCmd())
	return root
}
