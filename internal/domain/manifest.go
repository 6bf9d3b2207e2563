package domain

import (
	"fmt"
	"strings"
)

// Manifest is an exported environment description (environment.yml).
type Manifest struct {
	Name         string
	Prefix       string
	Channels     []string
	Dependencies []Dependency
}

// Dependency is one entry of the dependencies list.
// It is either a package spec ("python=3.12") or a nested pip block.
type Dependency struct {
	Spec string
	Pip  []string
}

// IsPip reports whether the dependency is a nested pip block.
func (d Dependency) IsPip() bool {
	return d.Spec == "" && d.Pip != nil
}

// PackageCount returns the number of package specs, including pip packages.
func (m *Manifest) PackageCount() int {
	n := 0
	for _, d := range m.Dependencies {
		if d.IsPip() {
			n += len(d.Pip)
			continue
		}
		n++
	}
	return n
}

// Validate checks that the manifest can be used to recreate an environment.
func (m *Manifest) Validate() error {
	if len(m.Dependencies) == 0 {
		return fmt.Errorf("%w: no dependencies", ErrInvalidManifest)
	}
	for i, d := range m.Dependencies {
		if d.IsPip() {
			continue
		}
		if strings.TrimSpace(d.Spec) == "" {
			return fmt.Errorf("%w: dependency %d is empty", ErrInvalidManifest, i)
		}
	}
	return nil
}
