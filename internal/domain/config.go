package domain

import (
	_ "embed"
	"path/filepath"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string       `toml:"-"`
	Env      EnvConfig      `toml:"env"`
	Manifest ManifestConfig `toml:"manifest"`
	Log      LogConfig      `toml:"log"`
}

// EnvConfig holds settings from the [env] section.
type EnvConfig struct {
	Target   string   `toml:"target,omitempty"`   // Environment directory (default: slides/env)
	Tool     string   `toml:"tool,omitempty"`     // Environment tool executable (default: conda)
	Packages []string `toml:"packages,omitempty"` // Packages passed to "create" (default: python)
	Yes      bool     `toml:"yes,omitempty"`      // Pass --yes to the tool
	Strict   bool     `toml:"strict,omitempty"`   // Fail when the tool exits non-zero
}

// ManifestConfig holds settings from the [manifest] section.
type ManifestConfig struct {
	File string `toml:"file,omitempty"` // Manifest file name relative to the environment parent
}

// LogConfig holds settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error
	Dir   string `toml:"dir,omitempty"`   // Log directory; empty disables file logging
}

// Default configuration values.
const (
	DefaultTool         = "conda"
	DefaultManifestFile = "environment.yml"
	DefaultLogLevel     = "info"
)

// DefaultPackages returns the packages installed into a new environment by default.
func DefaultPackages() []string {
	return []string{"python"}
}

// NewDefaultConfig returns a Config populated with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Env: EnvConfig{
			Target:   DefaultTarget,
			Tool:     DefaultTool,
			Packages: DefaultPackages(),
		},
		Manifest: ManifestConfig{
			File: DefaultManifestFile,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// RenderConfigTemplate returns the commented default configuration file.
func RenderConfigTemplate() string {
	return configTemplateContent
}

// Directory and file names for envboot.
const (
	AppDirName            = "envboot"       // Directory name under the user config home
	ConfigFileName        = "config.toml"   // Global config file name
	ProjectConfigFileName = ".envboot.toml" // Config file name in the working directory
	LogFileName           = "envboot.log"   // Log file name inside the log directory
)

// ProjectConfigPath returns the project config path.
func ProjectConfigPath(workDir string) string {
	return filepath.Join(workDir, ProjectConfigFileName)
}

// GlobalAppDir returns the global envboot directory path.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalAppDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path inside appDir (see GlobalAppDir).
func GlobalConfigPath(appDir string) string {
	return filepath.Join(appDir, ConfigFileName)
}

// LogPath returns the log file path inside logDir.
func LogPath(logDir string) string {
	return filepath.Join(logDir, LogFileName)
}
