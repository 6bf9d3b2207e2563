package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/envboot/internal/domain"
)

// BootstrapEnvInput contains the parameters for creating an environment.
// Fields are ordered to minimize memory padding.
type BootstrapEnvInput struct {
	Packages []string // Packages passed to the tool (required)
	BaseDir  string   // Directory the target is relative to; empty means process cwd
	Target   string   // Environment directory (required)
	Tool     string   // Environment tool executable (required)
	Yes      bool     // Pass --yes to the tool
	Strict   bool     // Return an error when the tool fails
}

// BootstrapEnvOutput contains the result of creating an environment.
type BootstrapEnvOutput struct {
	StartErr error               // Set when the tool could not be started
	Command  *domain.ExecCommand // Command that was run
	Layout   domain.Layout       // Resolved environment layout
	ExitCode int                 // Tool exit code; -1 when it could not be started
}

// BootstrapEnv ensures the environment directory exists and asks the
// environment tool to create an environment in it.
type BootstrapEnv struct {
	fs       domain.FileSystem
	executor domain.CommandExecutor
	logger   domain.Logger
}

// NewBootstrapEnv creates a new BootstrapEnv use case.
func NewBootstrapEnv(fs domain.FileSystem, executor domain.CommandExecutor, logger domain.Logger) *BootstrapEnv {
	return &BootstrapEnv{
		fs:       fs,
		executor: executor,
		logger:   logger,
	}
}

// Execute creates the target directory and runs "<tool> create --prefix <name> <packages>"
// from its parent. The tool's exit status is reported but does not fail the
// use case unless Strict is set.
func (uc *BootstrapEnv) Execute(_ context.Context, in BootstrapEnvInput) (*BootstrapEnvOutput, error) {
	layout, err := resolveEnv(in.Target, in.Tool, in.BaseDir)
	if err != nil {
		return nil, err
	}

	if err := uc.fs.EnsureDir(layout.Target); err != nil {
		uc.logger.Error("bootstrap", err.Error())
		return nil, err
	}
	uc.logger.Info("bootstrap", fmt.Sprintf("directory ready: %s", layout.Target))

	cmd := domain.NewCreateCommand(in.Tool, layout, in.Packages, in.Yes)
	report, err := runInteractive(uc.executor, uc.logger, cmd, in.Strict)
	if err != nil {
		return nil, err
	}

	return &BootstrapEnvOutput{
		Layout:   layout,
		Command:  cmd,
		ExitCode: report.ExitCode,
		StartErr: report.StartErr,
	}, nil
}
