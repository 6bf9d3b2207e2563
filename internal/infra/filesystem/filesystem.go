// Package filesystem implements domain.FileSystem on the local disk.
package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/runoshun/envboot/internal/domain"
)

// Ensure Local implements domain.FileSystem.
var _ domain.FileSystem = (*Local)(nil)

// Local operates on the local filesystem.
type Local struct{}

// New creates a Local filesystem.
func New() *Local {
	return &Local{}
}

// EnsureDir creates path and all missing parents with mode 0755.
func (l *Local) EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		if errors.Is(err, syscall.ENOTDIR) || errors.Is(err, fs.ErrExist) {
			err = fmt.Errorf("%w: %w", domain.ErrNotDirectory, err)
		}
		return &domain.FilesystemError{Op: "ensure directory", Path: path, Err: err}
	}
	return nil
}

// ReadFile returns the contents of path.
func (l *Local) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.FilesystemError{Op: "read", Path: path, Err: err}
	}
	return data, nil
}

// WriteFile writes data to path, creating the parent directory if needed.
func (l *Local) WriteFile(path string, data []byte) error {
	if err := l.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // manifests are committed alongside the project
		return &domain.FilesystemError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// Exists reports whether path exists.
func (l *Local) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, &domain.FilesystemError{Op: "stat", Path: path, Err: err}
}
