package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultTarget is the environment directory created when nothing else is configured.
const DefaultTarget = "slides/env"

// Layout describes where an environment lives on disk.
// Parent is the working directory handed to the environment tool and
// Name is the prefix the tool creates inside it.
type Layout struct {
	Target string // Cleaned target path (Parent joined with Name)
	Parent string // Directory the tool runs in
	Name   string // Last path element, passed as --prefix
}

// NewLayout splits target into its parent and final element.
// A single-element target uses "." as its parent.
func NewLayout(target string) (Layout, error) {
	if strings.TrimSpace(target) == "" {
		return Layout{}, ErrEmptyTarget
	}
	cleaned := filepath.Clean(target)
	name := filepath.Base(cleaned)
	if name == "." {
		return Layout{}, ErrEmptyTarget
	}
	if name == ".." || name == string(filepath.Separator) {
		return Layout{}, fmt.Errorf("%w: %s", ErrInvalidTarget, target)
	}
	return Layout{
		Target: cleaned,
		Parent: filepath.Dir(cleaned),
		Name:   name,
	}, nil
}

// In returns the layout resolved against baseDir.
// An empty baseDir leaves the paths relative to the process working directory.
// An absolute target is returned unchanged.
func (l Layout) In(baseDir string) Layout {
	if baseDir == "" || filepath.IsAbs(l.Target) {
		return l
	}
	return Layout{
		Target: filepath.Join(baseDir, l.Target),
		Parent: filepath.Join(baseDir, l.Parent),
		Name:   l.Name,
	}
}

// ManifestPath returns the path of the manifest file next to the environment.
// An absolute file is used as is.
func (l Layout) ManifestPath(file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(l.Parent, file)
}

// ActivateHint returns the command an operator runs from Parent to activate the environment.
func (l Layout) ActivateHint(tool string) string {
	return tool + " activate ./" + l.Name
}
