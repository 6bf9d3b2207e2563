// Package manifest reads environment.yml files produced by "conda env export".
package manifest

import (
	"fmt"

	"github.com/runoshun/envboot/internal/domain"
	"gopkg.in/yaml.v3"
)

// Ensure Codec implements domain.ManifestCodec.
var _ domain.ManifestCodec = (*Codec)(nil)

// Codec decodes YAML environment manifests.
type Codec struct{}

// NewCodec creates a new Codec.
func NewCodec() *Codec {
	return &Codec{}
}

type manifestFile struct {
	Name         string      `yaml:"name"`
	Prefix       string      `yaml:"prefix"`
	Channels     []string    `yaml:"channels"`
	Dependencies []yaml.Node `yaml:"dependencies"`
}

// Decode parses and validates a manifest.
func (c *Codec) Decode(data []byte) (*domain.Manifest, error) {
	var raw manifestFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidManifest, err)
	}

	m := &domain.Manifest{
		Name:     raw.Name,
		Prefix:   raw.Prefix,
		Channels: raw.Channels,
	}
	for i := range raw.Dependencies {
		dep, err := decodeDependency(&raw.Dependencies[i])
		if err != nil {
			return nil, fmt.Errorf("%w: dependency %d: %w", domain.ErrInvalidManifest, i, err)
		}
		m.Dependencies = append(m.Dependencies, dep)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// decodeDependency accepts either "pkg=ver" or a {pip: [...]} mapping.
func decodeDependency(node *yaml.Node) (domain.Dependency, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return domain.Dependency{Spec: node.Value}, nil
	case yaml.MappingNode:
		var block struct {
			Pip []string `yaml:"pip"`
		}
		if err := node.Decode(&block); err != nil {
			return domain.Dependency{}, err
		}
		if block.Pip == nil {
			return domain.Dependency{}, fmt.Errorf("line %d: only pip blocks are supported", node.Line)
		}
		return domain.Dependency{Pip: block.Pip}, nil
	default:
		return domain.Dependency{}, fmt.Errorf("line %d: unexpected node", node.Line)
	}
}
