package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/envboot/internal/domain"
)

// RestoreEnvInput contains the parameters for recreating an environment from a manifest.
type RestoreEnvInput struct {
	BaseDir      string // Directory the target is relative to; empty means process cwd
	Target       string // Environment directory (required)
	Tool         string // Environment tool executable (required)
	ManifestFile string // Manifest file name next to the environment (required)
	Yes          bool   // Pass --yes to the tool
	Strict       bool   // Return an error when the tool fails
}

// RestoreEnvOutput contains the result of a restore.
type RestoreEnvOutput struct {
	StartErr     error
	Manifest     *domain.Manifest
	Command      *domain.ExecCommand
	ManifestPath string
	ExitCode     int
}

// RestoreEnv recreates an environment from an exported manifest.
type RestoreEnv struct {
	fs       domain.FileSystem
	executor domain.CommandExecutor
	codec    domain.ManifestCodec
	logger   domain.Logger
}

// NewRestoreEnv creates a new RestoreEnv use case.
func NewRestoreEnv(fs domain.FileSystem, executor domain.CommandExecutor, codec domain.ManifestCodec, logger domain.Logger) *RestoreEnv {
	return &RestoreEnv{
		fs:       fs,
		executor: executor,
		codec:    codec,
		logger:   logger,
	}
}

// Execute validates the manifest and runs "<tool> env create --prefix <name> -f <manifest>".
func (uc *RestoreEnv) Execute(_ context.Context, in RestoreEnvInput) (*RestoreEnvOutput, error) {
	layout, err := resolveEnv(in.Target, in.Tool, in.BaseDir)
	if err != nil {
		return nil, err
	}

	path := layout.ManifestPath(in.ManifestFile)
	exists, err := uc.fs.Exists(path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrManifestNotFound, path)
	}

	data, err := uc.fs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	manifest, err := uc.codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	uc.logger.Info("restore", fmt.Sprintf("manifest %s lists %d packages", path, manifest.PackageCount()))

	if err := uc.fs.EnsureDir(layout.Parent); err != nil {
		return nil, err
	}

	cmd := domain.NewRestoreCommand(in.Tool, layout, in.ManifestFile, in.Yes)
	report, err := runInteractive(uc.executor, uc.logger, cmd, in.Strict)
	if err != nil {
		return nil, err
	}

	return &RestoreEnvOutput{
		Manifest:     manifest,
		ManifestPath: path,
		Command:      cmd,
		ExitCode:     report.ExitCode,
		StartErr:     report.StartErr,
	}, nil
}
