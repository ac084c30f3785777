package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kubeworks/chartgen/internal/ui"
	"github.com/kubeworks/chartgen/internal/update"
)

// newUpdateCmd builds the self-update command.
func newUpdateCmd() *cobra.Command {
	var checkOnly bool

	cmd := &cobra.Command{
		Use:     "update",
		Aliases: []string{"selfupdate"},
		Short:   "Update chartgen to the latest version",
		Long: `Update chartgen to the latest version from GitHub releases.

Examples:
  chartgen update           # Update to latest version
  chartgen update --check   # Check for updates without installing`,
		Run: func(cmd *cobra.Command, args []string) {
			runUpdate(cmd, checkOnly)
		},
	}

	cmd.Flags().BoolVar(&checkOnly, "check", false, "Only check for updates, don't install")

	return cmd
}

func runUpdate(cmd *cobra.Command, checkOnly bool) {
	ui.Info("Current version: %s (%s)", version, update.GetPlatformInfo())

	if checkOnly {
		release, available, err := update.CheckForUpdate(cmd.Context(), version)
		if err != nil {
			ui.Error("Failed to check for updates: %v", err)
			return
		}
		if !available {
			ui.Success("You're running the latest version!")
			return
		}

		ui.Success("New version available: %s (released %s)", release.Version, release.PublishedAt)
		ui.Info("To update, run: chartgen update")
		return
	}

	release, err := update.Update(cmd.Context(), version)
	if err != nil {
		ui.Error("Update failed: %v", err)
		return
	}
	if release == nil {
		ui.Success("You're already running the latest version!")
		return
	}

	ui.Success("Successfully updated to version %s!", release.Version)
}
