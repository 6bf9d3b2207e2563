package cli

import (
	"github.com/runoshun/envboot/internal/app"
	"github.com/runoshun/envboot/internal/domain"
	"github.com/spf13/cobra"
)

// envOptions holds per-invocation overrides of the [env] config section.
type envOptions struct {
	packages []string
	target   string
	tool     string
	manifest string
	yes      bool
	strict   bool
}

// bind registers the flags. withCreate adds the flags only creation uses.
func (o *envOptions) bind(cmd *cobra.Command, withCreate bool) {
	cmd.Flags().StringVarP(&o.target, "target", "t", "", "Environment directory (default from config: slides/env)")
	cmd.Flags().StringVar(&o.tool, "tool", "", "Environment tool executable (default from config: conda)")
	if withCreate {
		cmd.Flags().StringSliceVarP(&o.packages, "package", "p", nil, "Package to install; repeatable (default from config: python)")
	}
	cmd.Flags().BoolVarP(&o.yes, "yes", "y", false, "Pass --yes to the tool")
	cmd.Flags().BoolVar(&o.strict, "strict", false, "Fail when the tool exits non-zero")
}

// bindManifest registers the manifest file flag.
func (o *envOptions) bindManifest(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.manifest, "file", "f", "", "Manifest file next to the environment (default from config: environment.yml)")
}

// resolve loads the config and applies flags the user set explicitly.
func (o *envOptions) resolve(cmd *cobra.Command, c *app.Container) (*domain.Config, error) {
	loaded, err := c.ConfigLoader.Load()
	if err != nil {
		return nil, err
	}
	cfg := *loaded

	flags := cmd.Flags()
	if flags.Changed("target") {
		cfg.Env.Target = o.target
	}
	if flags.Changed("tool") {
		cfg.Env.Tool = o.tool
	}
	if flags.Changed("package") {
		cfg.Env.Packages = o.packages
	}
	if flags.Changed("yes") {
		cfg.Env.Yes = o.yes
	}
	if flags.Changed("strict") {
		cfg.Env.Strict = o.strict
	}
	if flags.Changed("file") {
		cfg.Manifest.File = o.manifest
	}
	return &cfg, nil
}
