package cli

import (
	"fmt"

	"github.com/runoshun/envboot/internal/app"
	"github.com/runoshun/envboot/internal/usecase"
	"github.com/spf13/cobra"
)

// newRestoreCommand creates the restore command.
func newRestoreCommand(c *app.Container) *cobra.Command {
	var opts envOptions

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Recreate the environment from a manifest",
		Long: `Run "<tool> env create --prefix <name> -f <manifest>" from the
environment's parent directory.

The manifest must exist and list at least one dependency. Like create,
the tool's exit status is printed and only fails envboot with --strict.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.resolve(cmd, c)
			if err != nil {
				return err
			}

			out, err := c.RestoreEnvUseCase().Execute(cmd.Context(), usecase.RestoreEnvInput{
				BaseDir:      c.Config.WorkDir,
				Target:       cfg.Env.Target,
				Tool:         cfg.Env.Tool,
				ManifestFile: cfg.Manifest.File,
				Yes:          cfg.Env.Yes,
				Strict:       cfg.Env.Strict,
			})
			if err != nil {
				return err
			}

			switch {
			case out.StartErr != nil:
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), warningStyle.Render(
					fmt.Sprintf("Could not run %s: %v (ignored; use --strict to fail)", out.Command.Program, out.StartErr)))
			case out.ExitCode != 0:
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), warningStyle.Render(
					fmt.Sprintf("%s exited with status %d (ignored; use --strict to fail)", out.Command.Program, out.ExitCode)))
			default:
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(
					fmt.Sprintf("Restored %d packages from %s", out.Manifest.PackageCount(), out.ManifestPath)))
			}
			return nil
		},
	}

	opts.bind(cmd, false)
	opts.bindManifest(cmd)
	return cmd
}
