// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/envboot/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	workDir       string // Directory holding .envboot.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/envboot)
}

// NewLoader creates a new Loader.
func NewLoader(workDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(workDir, globalConfDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalAppDir(configHome)
}

// Load returns the merged configuration (defaults <- global <- project).
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	if l.globalConfDir != "" {
		global, err := l.loadFile(domain.GlobalConfigPath(l.globalConfDir))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if global != nil {
			global.applyTo(base)
		}
	}

	project, err := l.loadFile(domain.ProjectConfigPath(l.workDir))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if project != nil {
		project.applyTo(base)
	}

	sort.Strings(base.Warnings)
	return base, nil
}

// loadFile loads a configuration layer from a file.
func (l *Loader) loadFile(path string) (*layer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return parseLayer(raw), nil
}

// layer is one parsed config file. Pointer fields distinguish "unset" from zero values.
type layer struct {
	Target       *string
	Tool         *string
	Packages     []string
	Yes          *bool
	Strict       *bool
	ManifestFile *string
	LogLevel     *string
	LogDir       *string
	Warnings     []string
}

// applyTo overrides cfg with every field set in the layer.
func (ly *layer) applyTo(cfg *domain.Config) {
	if ly.Target != nil {
		cfg.Env.Target = *ly.Target
	}
	if ly.Tool != nil {
		cfg.Env.Tool = *ly.Tool
	}
	if ly.Packages != nil {
		cfg.Env.Packages = ly.Packages
	}
	if ly.Yes != nil {
		cfg.Env.Yes = *ly.Yes
	}
	if ly.Strict != nil {
		cfg.Env.Strict = *ly.Strict
	}
	if ly.ManifestFile != nil {
		cfg.Manifest.File = *ly.ManifestFile
	}
	if ly.LogLevel != nil {
		cfg.Log.Level = *ly.LogLevel
	}
	if ly.LogDir != nil {
		cfg.Log.Dir = *ly.LogDir
	}
	cfg.Warnings = append(cfg.Warnings, ly.Warnings...)
}

// parseLayer converts the raw map to a layer and collects warnings.
func parseLayer(raw map[string]any) *layer {
	res := &layer{}

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			res.Warnings = append(res.Warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "env":
			for k, v := range m {
				switch k {
				case "target":
					res.Target = res.stringValue(section, k, v)
				case "tool":
					res.Tool = res.stringValue(section, k, v)
				case "packages":
					res.Packages = res.stringSlice(section, k, v)
				case "yes":
					res.Yes = res.boolValue(section, k, v)
				case "strict":
					res.Strict = res.boolValue(section, k, v)
				default:
					res.Warnings = append(res.Warnings, fmt.Sprintf("unknown key in [env]: %s", k))
				}
			}
		case "manifest":
			for k, v := range m {
				switch k {
				case "file":
					res.ManifestFile = res.stringValue(section, k, v)
				default:
					res.Warnings = append(res.Warnings, fmt.Sprintf("unknown key in [manifest]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					res.LogLevel = res.stringValue(section, k, v)
				case "dir":
					res.LogDir = res.stringValue(section, k, v)
				default:
					res.Warnings = append(res.Warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		default:
			res.Warnings = append(res.Warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(res.Warnings)
	return res
}

// invalid records a warning for a known key holding a value of the wrong type.
func (ly *layer) invalid(section, key, want string) {
	ly.Warnings = append(ly.Warnings, fmt.Sprintf("invalid value for [%s].%s: expected %s", section, key, want))
}

func (ly *layer) stringValue(section, key string, v any) *string {
	if s, ok := v.(string); ok {
		return &s
	}
	ly.invalid(section, key, "a string")
	return nil
}

func (ly *layer) boolValue(section, key string, v any) *bool {
	if b, ok := v.(bool); ok {
		return &b
	}
	ly.invalid(section, key, "true or false")
	return nil
}

// stringSlice rejects the whole value when any item is not a string.
func (ly *layer) stringSlice(section, key string, v any) []string {
	items, ok := v.([]any)
	if !ok {
		ly.invalid(section, key, "a list of strings")
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			ly.invalid(section, key, "a list of strings")
			return nil
		}
		out = append(out, s)
	}
	return out
}
