package cli

import (
	"fmt"
	"io"

	"github.com/runoshun/envboot/internal/app"
	"github.com/runoshun/envboot/internal/usecase"
	"github.com/spf13/cobra"
)

// newCreateCommand creates the create command.
func newCreateCommand(c *app.Container) *cobra.Command {
	var opts envOptions

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create the environment directory and run the tool",
		Long: `Create the environment directory and run "<tool> create --prefix <name> <packages>"
from its parent directory.

The directory and any missing parents are created first. If a path
component exists and is not a directory, envboot fails and the tool
is not run.

The tool inherits the terminal, so its confirmation prompt works as usual.
Its exit status is printed; pass --strict to make a failure fail envboot.`,
		Example: `  envboot create
  envboot create --target talk/env --package python=3.12 --package jupyter
  envboot create --tool mamba --yes --strict`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCreate(cmd, c, &opts)
		},
	}

	opts.bind(cmd, true)
	return cmd
}

// runCreate is shared by the root command and "create".
func runCreate(cmd *cobra.Command, c *app.Container, opts *envOptions) error {
	cfg, err := opts.resolve(cmd, c)
	if err != nil {
		return err
	}

	out, err := c.BootstrapEnvUseCase().Execute(cmd.Context(), usecase.BootstrapEnvInput{
		BaseDir:  c.Config.WorkDir,
		Target:   cfg.Env.Target,
		Tool:     cfg.Env.Tool,
		Packages: cfg.Env.Packages,
		Yes:      cfg.Env.Yes,
		Strict:   cfg.Env.Strict,
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch {
	case out.StartErr != nil:
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), warningStyle.Render(
			fmt.Sprintf("Could not run %s: %v (ignored; use --strict to fail)", out.Command.Program, out.StartErr)))
	case out.ExitCode != 0:
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), warningStyle.Render(
			fmt.Sprintf("%s exited with status %d (ignored; use --strict to fail)", out.Command.Program, out.ExitCode)))
	default:
		_, _ = fmt.Fprintln(w, successStyle.Render("Environment ready: "+out.Layout.Target))
	}

	printNextSteps(w, out.Layout.Parent, out.Layout.ActivateHint(cfg.Env.Tool), cfg.Manifest.File)
	return nil
}

// printNextSteps prints the manual follow-up commands for a fresh environment.
func printNextSteps(w io.Writer, dir, activate, manifestFile string) {
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, headerStyle.Render("Next steps:"))
	_, _ = fmt.Fprintln(w, commandStyle.Render(fmt.Sprintf("cd %s && %s", dir, activate)))
	_, _ = fmt.Fprintln(w, commandStyle.Render("envboot export"), mutedStyle.Render("# write "+manifestFile))
	_, _ = fmt.Fprintln(w, commandStyle.Render("envboot restore"), mutedStyle.Render("# recreate from "+manifestFile))
}
