package domain

// CommandExecutor runs external commands.
// A non-nil error means the command could not be started; a command that
// ran and exited non-zero is reported through ExecResult.ExitCode.
type CommandExecutor interface {
	// Execute runs the command and captures its combined output.
	Execute(cmd *ExecCommand) (*ExecResult, error)

	// ExecuteInteractive runs the command attached to the caller's terminal.
	ExecuteInteractive(cmd *ExecCommand) (*ExecResult, error)
}

// FileSystem is the subset of filesystem operations the use cases need.
type FileSystem interface {
	// EnsureDir creates path and any missing parents.
	// It succeeds when path already is a directory.
	EnsureDir(path string) error

	// ReadFile returns the contents of path.
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces the contents of path.
	WriteFile(path string, data []byte) error

	// Exists reports whether path exists.
	Exists(path string) (bool, error)
}

// ManifestCodec decodes and validates environment manifests.
type ManifestCodec interface {
	Decode(data []byte) (*Manifest, error)
}

// ConfigLoader loads configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults <- global <- project).
	Load() (*Config, error)
}

// ConfigInfo contains information about a config file.
type ConfigInfo struct {
	Path   string
	Exists bool
}

// ConfigManager creates configuration files.
type ConfigManager interface {
	GetProjectConfigInfo() ConfigInfo
	GetGlobalConfigInfo() ConfigInfo
	InitProjectConfig() error
	InitGlobalConfig() error
}

// Logger writes diagnostic log entries grouped by category.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}
