package cli

import (
	"fmt"

	"github.com/runoshun/envboot/internal/app"
	"github.com/runoshun/envboot/internal/usecase"
	"github.com/spf13/cobra"
)

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	var opts envOptions

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the environment's package list to a manifest",
		Long: `Run "<tool> env export --prefix <name>" from the environment's parent
directory and write the result to the manifest file (environment.yml).

The output is checked before it is written; a failing tool or an
unreadable manifest leaves any existing file untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.resolve(cmd, c)
			if err != nil {
				return err
			}

			out, err := c.ExportEnvUseCase().Execute(cmd.Context(), usecase.ExportEnvInput{
				BaseDir:      c.Config.WorkDir,
				Target:       cfg.Env.Target,
				Tool:         cfg.Env.Tool,
				ManifestFile: cfg.Manifest.File,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(
				fmt.Sprintf("Exported %d packages to %s", out.Manifest.PackageCount(), out.ManifestPath)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.target, "target", "t", "", "Environment directory (default from config: slides/env)")
	cmd.Flags().StringVar(&opts.tool, "tool", "", "Environment tool executable (default from config: conda)")
	opts.bindManifest(cmd)
	return cmd
}
