package cli

import (
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Long:  "Print the effective configuration as TOML. The output can be edited and passed back with --config.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return configFromContext(cmd.Context()).Write(cmd.OutOrStdout())
		},
	}
}
