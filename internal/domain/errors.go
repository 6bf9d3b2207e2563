package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrEmptyTarget      = errors.New("target directory cannot be empty")
	ErrInvalidTarget    = errors.New("target must name a directory below its parent")
	ErrEmptyTool        = errors.New("environment tool cannot be empty")
	ErrNotDirectory     = errors.New("path component exists and is not a directory")
	ErrManifestNotFound = errors.New("environment manifest not found (run 'envboot export' first)")
	ErrInvalidManifest  = errors.New("invalid environment manifest")
	ErrConfigExists     = errors.New("config file already exists")
	ErrCommandFailed    = errors.New("environment command failed")
)

// FilesystemError reports a failed filesystem operation on Path.
type FilesystemError struct {
	Err  error
	Op   string
	Path string
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}
