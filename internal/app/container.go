// Package app provides the dependency injection container for the application.
package app

import (
	"path/filepath"

	"github.com/runoshun/envboot/internal/domain"
	"github.com/runoshun/envboot/internal/infra/config"
	"github.com/runoshun/envboot/internal/infra/executor"
	"github.com/runoshun/envboot/internal/infra/filesystem"
	"github.com/runoshun/envboot/internal/infra/logging"
	"github.com/runoshun/envboot/internal/infra/manifest"
	"github.com/runoshun/envboot/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	WorkDir string // Directory the environment target is relative to
	LogDir  string // Resolved log directory; empty when file logging is off
}

// newConfig resolves paths from the loaded application config.
func newConfig(workDir string, appConfig *domain.Config) Config {
	logDir := appConfig.Log.Dir
	if logDir != "" && !filepath.IsAbs(logDir) {
		logDir = filepath.Join(workDir, logDir)
	}
	return Config{
		WorkDir: workDir,
		LogDir:  logDir,
	}
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	FileSystem    domain.FileSystem
	Executor      domain.CommandExecutor
	Manifests     domain.ManifestCodec
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Logger        domain.Logger

	closeLogger func() error

	// Configuration
	Config Config
}

// New creates a new Container rooted at workDir.
func New(workDir string) *Container {
	configLoader := config.NewLoader(workDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		// Broken config files are reported by the command that loads them.
		appConfig = domain.NewDefaultConfig()
	}

	cfg := newConfig(workDir, appConfig)
	logger := logging.New(cfg.LogDir, logging.ParseLevel(appConfig.Log.Level))

	return &Container{
		FileSystem:    filesystem.New(),
		Executor:      executor.NewClient(),
		Manifests:     manifest.NewCodec(),
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(workDir),
		Logger:        logger,
		closeLogger:   logger.Close,
		Config:        cfg,
	}
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(
	cfg Config,
	fs domain.FileSystem,
	exec domain.CommandExecutor,
	manifests domain.ManifestCodec,
	configLoader domain.ConfigLoader,
	configManager domain.ConfigManager,
	logger domain.Logger,
) *Container {
	return &Container{
		FileSystem:    fs,
		Executor:      exec,
		Manifests:     manifests,
		ConfigLoader:  configLoader,
		ConfigManager: configManager,
		Logger:        logger,
		Config:        cfg,
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.closeLogger == nil {
		return nil
	}
	return c.closeLogger()
}

// UseCase factory methods

// BootstrapEnvUseCase returns a new BootstrapEnv use case.
func (c *Container) BootstrapEnvUseCase() *usecase.BootstrapEnv {
	return usecase.NewBootstrapEnv(c.FileSystem, c.Executor, c.Logger)
}

// ExportEnvUseCase returns a new ExportEnv use case.
func (c *Container) ExportEnvUseCase() *usecase.ExportEnv {
	return usecase.NewExportEnv(c.FileSystem, c.Executor, c.Manifests, c.Logger)
}

// RestoreEnvUseCase returns a new RestoreEnv use case.
func (c *Container) RestoreEnvUseCase() *usecase.RestoreEnv {
	return usecase.NewRestoreEnv(c.FileSystem, c.Executor, c.Manifests, c.Logger)
}

// ShowActivationUseCase returns a new ShowActivation use case.
func (c *Container) ShowActivationUseCase() *usecase.ShowActivation {
	return usecase.NewShowActivation(c.FileSystem)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// ShowConfigTemplateUseCase returns a new ShowConfigTemplate use case.
func (c *Container) ShowConfigTemplateUseCase() *usecase.ShowConfigTemplate {
	return usecase.NewShowConfigTemplate()
}
