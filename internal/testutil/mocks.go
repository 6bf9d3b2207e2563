// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/runoshun/envboot/internal/domain"
)

// MockCommandExecutor is a test double for domain.CommandExecutor.
// Fields are ordered to minimize memory padding.
type MockCommandExecutor struct {
	Result      *domain.ExecResult // Returned by both methods; nil means exit 0
	Err         error              // Returned instead of a result (start failure)
	Interactive []*domain.ExecCommand
	Captured    []*domain.ExecCommand
}

// NewMockCommandExecutor creates a new MockCommandExecutor that reports success.
func NewMockCommandExecutor() *MockCommandExecutor {
	return &MockCommandExecutor{}
}

// Ensure MockCommandExecutor implements domain.CommandExecutor interface.
var _ domain.CommandExecutor = (*MockCommandExecutor)(nil)

// Execute records the command and returns the configured result.
func (m *MockCommandExecutor) Execute(cmd *domain.ExecCommand) (*domain.ExecResult, error) {
	m.Captured = append(m.Captured, cmd)
	return m.result()
}

// ExecuteInteractive records the command and returns the configured result.
func (m *MockCommandExecutor) ExecuteInteractive(cmd *domain.ExecCommand) (*domain.ExecResult, error) {
	m.Interactive = append(m.Interactive, cmd)
	return m.result()
}

// Calls returns the total number of executed commands.
func (m *MockCommandExecutor) Calls() int {
	return len(m.Interactive) + len(m.Captured)
}

func (m *MockCommandExecutor) result() (*domain.ExecResult, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Result == nil {
		return &domain.ExecResult{}, nil
	}
	return m.Result, nil
}

// MockFileSystem is an in-memory test double for domain.FileSystem.
// Fields are ordered to minimize memory padding.
type MockFileSystem struct {
	Dirs         map[string]bool
	Files        map[string][]byte
	EnsureDirErr error
	ReadErr      error
	WriteErr     error
	ExistsErr    error
}

// NewMockFileSystem creates a new, empty MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Dirs:  make(map[string]bool),
		Files: make(map[string][]byte),
	}
}

// Ensure MockFileSystem implements domain.FileSystem interface.
var _ domain.FileSystem = (*MockFileSystem)(nil)

// EnsureDir records path and its parents as directories.
// A file on any of those paths fails like the real filesystem does.
func (m *MockFileSystem) EnsureDir(path string) error {
	if m.EnsureDirErr != nil {
		return m.EnsureDirErr
	}
	for p := filepath.Clean(path); ; p = filepath.Dir(p) {
		if _, ok := m.Files[p]; ok {
			return &domain.FilesystemError{
				Op:   "ensure directory",
				Path: path,
				Err:  fmt.Errorf("%w: %s", domain.ErrNotDirectory, p),
			}
		}
		if p == "." || p == filepath.Dir(p) {
			break
		}
	}
	for p := filepath.Clean(path); p != "." && p != filepath.Dir(p); p = filepath.Dir(p) {
		m.Dirs[p] = true
	}
	return nil
}

// ReadFile returns the stored file content.
func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	data, ok := m.Files[filepath.Clean(path)]
	if !ok {
		return nil, &domain.FilesystemError{Op: "read", Path: path, Err: fs.ErrNotExist}
	}
	return data, nil
}

// WriteFile stores the file content.
func (m *MockFileSystem) WriteFile(path string, data []byte) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Files[filepath.Clean(path)] = data
	return nil
}

// Exists reports whether path was stored as a file or directory.
func (m *MockFileSystem) Exists(path string) (bool, error) {
	if m.ExistsErr != nil {
		return false, m.ExistsErr
	}
	p := filepath.Clean(path)
	_, isFile := m.Files[p]
	return isFile || m.Dirs[p], nil
}

// MockManifestCodec is a test double for domain.ManifestCodec.
type MockManifestCodec struct {
	Manifest *domain.Manifest
	Err      error
	Decoded  [][]byte
}

// NewMockManifestCodec creates a codec that returns a one-package manifest.
func NewMockManifestCodec() *MockManifestCodec {
	return &MockManifestCodec{
		Manifest: &domain.Manifest{
			Dependencies: []domain.Dependency{{Spec: "python"}},
		},
	}
}

// Ensure MockManifestCodec implements domain.ManifestCodec interface.
var _ domain.ManifestCodec = (*MockManifestCodec)(nil)

// Decode records data and returns the configured manifest or error.
func (m *MockManifestCodec) Decode(data []byte) (*domain.Manifest, error) {
	m.Decoded = append(m.Decoded, data)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Manifest, nil
}

// LogEntry is one entry recorded by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// MockLogger is a test double for domain.Logger that records entries.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

// NewMockLogger creates a new MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

// Ensure MockLogger implements domain.Logger interface.
var _ domain.Logger = (*MockLogger)(nil)

func (m *MockLogger) record(level, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// Debug records a debug entry.
func (m *MockLogger) Debug(category, msg string) { m.record("DEBUG", category, msg) }

// Info records an info entry.
func (m *MockLogger) Info(category, msg string) { m.record("INFO", category, msg) }

// Warn records a warning entry.
func (m *MockLogger) Warn(category, msg string) { m.record("WARN", category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(category, msg string) { m.record("ERROR", category, msg) }

// Has reports whether an entry with the given level was recorded.
func (m *MockLogger) Has(level string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.Entries {
		if e.Level == level {
			return true
		}
	}
	return false
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config *domain.Config
	Err    error
}

// NewMockConfigLoader creates a loader returning the default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{Config: domain.NewDefaultConfig()}
}

// Ensure MockConfigLoader implements domain.ConfigLoader interface.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitProjectErr    error
	InitGlobalErr     error
	ProjectConfigInfo domain.ConfigInfo
	GlobalConfigInfo  domain.ConfigInfo
	InitProjectCalled bool
	InitGlobalCalled  bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{
		ProjectConfigInfo: domain.ConfigInfo{
			Path:   "/test/.envboot.toml",
			Exists: false,
		},
		GlobalConfigInfo: domain.ConfigInfo{
			Path:   "/home/test/.config/envboot/config.toml",
			Exists: false,
		},
	}
}

// Ensure MockConfigManager implements domain.ConfigManager interface.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// GetProjectConfigInfo returns the configured project config info.
func (m *MockConfigManager) GetProjectConfigInfo() domain.ConfigInfo {
	return m.ProjectConfigInfo
}

// GetGlobalConfigInfo returns the configured global config info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// InitProjectConfig records the call and returns configured error.
func (m *MockConfigManager) InitProjectConfig() error {
	m.InitProjectCalled = true
	return m.InitProjectErr
}

// InitGlobalConfig records the call and returns configured error.
func (m *MockConfigManager) InitGlobalConfig() error {
	m.InitGlobalCalled = true
	return m.InitGlobalErr
}
