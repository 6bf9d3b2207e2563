package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/envboot/internal/domain"
)

// ExportEnvInput contains the parameters for exporting an environment manifest.
type ExportEnvInput struct {
	BaseDir      string // Directory the target is relative to; empty means process cwd
	Target       string // Environment directory (required)
	Tool         string // Environment tool executable (required)
	ManifestFile string // Manifest file name, written next to the environment (required)
}

// ExportEnvOutput contains the result of exporting a manifest.
type ExportEnvOutput struct {
	Manifest     *domain.Manifest
	ManifestPath string
}

// ExportEnv writes the package list of an environment to a manifest file.
type ExportEnv struct {
	fs       domain.FileSystem
	executor domain.CommandExecutor
	codec    domain.ManifestCodec
	logger   domain.Logger
}

// NewExportEnv creates a new ExportEnv use case.
func NewExportEnv(fs domain.FileSystem, executor domain.CommandExecutor, codec domain.ManifestCodec, logger domain.Logger) *ExportEnv {
	return &ExportEnv{
		fs:       fs,
		executor: executor,
		codec:    codec,
		logger:   logger,
	}
}

// Execute runs "<tool> env export --prefix <name>" and stores the validated output.
// Unlike creation, a failing export is an error: there is nothing to write.
func (uc *ExportEnv) Execute(_ context.Context, in ExportEnvInput) (*ExportEnvOutput, error) {
	if strings.TrimSpace(in.ManifestFile) == "" {
		return nil, fmt.Errorf("%w: manifest file name is empty", domain.ErrInvalidManifest)
	}
	layout, err := resolveEnv(in.Target, in.Tool, in.BaseDir)
	if err != nil {
		return nil, err
	}

	cmd := domain.NewExportCommand(in.Tool, layout)
	line := commandLine(cmd)
	uc.logger.Info("export", fmt.Sprintf("running %q in %s", line, cmd.Dir))

	res, err := uc.executor.Execute(cmd)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrCommandFailed, line, err)
	}
	if !res.Success() {
		uc.logger.Error("export", fmt.Sprintf("%q exited with status %d", line, res.ExitCode))
		detail := res.Stderr
		if len(bytes.TrimSpace(detail)) == 0 {
			detail = res.Output
		}
		return nil, fmt.Errorf("%w: %s exited with status %d: %s",
			domain.ErrCommandFailed, line, res.ExitCode, strings.TrimSpace(string(detail)))
	}
	if notice := strings.TrimSpace(string(res.Stderr)); notice != "" {
		uc.logger.Warn("export", fmt.Sprintf("%q wrote to stderr: %s", line, notice))
	}

	manifest, err := uc.codec.Decode(res.Output)
	if err != nil {
		return nil, err
	}

	path := layout.ManifestPath(in.ManifestFile)
	if err := uc.fs.WriteFile(path, res.Output); err != nil {
		return nil, err
	}
	uc.logger.Info("export", fmt.Sprintf("wrote %s (%d packages)", path, manifest.PackageCount()))

	return &ExportEnvOutput{
		Manifest:     manifest,
		ManifestPath: path,
	}, nil
}
