package cli

import (
	"fmt"

	"github.com/runoshun/envboot/internal/app"
	"github.com/runoshun/envboot/internal/usecase"
	"github.com/spf13/cobra"
)

// newActivateCommand creates the activate command.
func newActivateCommand(c *app.Container) *cobra.Command {
	var opts envOptions

	cmd := &cobra.Command{
		Use:   "activate",
		Short: "Print the command that activates the environment",
		Long: `Print the command that activates the environment.

envboot cannot change the environment of the calling shell, so the
command is printed for you to run, e.g.:

    eval "$(envboot activate)"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.resolve(cmd, c)
			if err != nil {
				return err
			}

			out, err := c.ShowActivationUseCase().Execute(cmd.Context(), usecase.ShowActivationInput{
				BaseDir: c.Config.WorkDir,
				Target:  cfg.Env.Target,
				Tool:    cfg.Env.Tool,
			})
			if err != nil {
				return err
			}

			if !out.Exists {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), warningStyle.Render("Environment does not exist yet; run 'envboot create' first"))
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "cd %s && %s\n", out.Dir, out.Command)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.target, "target", "t", "", "Environment directory (default from config: slides/env)")
	cmd.Flags().StringVar(&opts.tool, "tool", "", "Environment tool executable (default from config: conda)")
	return cmd
}
