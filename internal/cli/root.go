// Package cli provides the command-line interface for envboot.
package cli

import (
	"fmt"

	"github.com/runoshun/envboot/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupEnv   = "env"
	groupSetup = "setup"
)

// NewRootCommand creates the root command for envboot.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var opts envOptions

	root := &cobra.Command{
		Use:   "envboot",
		Short: "Bootstrap a conda environment for a project directory",
		Long: `envboot creates the environment directory (slides/env by default) and
runs the environment tool from its parent:

    cd slides && conda create --prefix env python

Running envboot without a subcommand is the same as "envboot create".
The tool's exit status is reported but does not change envboot's own
exit status unless --strict is given.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if c == nil {
				return nil
			}
			cfg, err := c.ConfigLoader.Load()
			if err != nil {
				// Reported by the command itself when it loads the config
				return nil
			}
			for _, w := range cfg.Warnings {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), warningStyle.Render("Warning: "+w))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCreate(cmd, c, &opts)
		},
	}

	opts.bind(root, true)

	root.AddGroup(
		&cobra.Group{ID: groupEnv, Title: "Environment Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	createCmd := newCreateCommand(c)
	createCmd.GroupID = groupEnv

	activateCmd := newActivateCommand(c)
	activateCmd.GroupID = groupEnv

	exportCmd := newExportCommand(c)
	exportCmd.GroupID = groupEnv

	restoreCmd := newRestoreCommand(c)
	restoreCmd.GroupID = groupEnv

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		createCmd,
		activateCmd,
		exportCmd,
		restoreCmd,
		configCmd,
	)

	return root
}
