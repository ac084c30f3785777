package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kubeworks/chartgen/internal/update"
)

// newVersionCmd builds the version command. The root command cannot carry
// the usual --version flag because that spelling belongs to the chart
// version.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the chartgen version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "chartgen version %s (%s)\n", version, update.GetPlatformInfo())
		},
	}
}
