package domain

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewLayout(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantParent string
		wantName   string
	}{
		{"default target", "slides/env", "slides", "env"},
		{"single element", "env", ".", "env"},
		{"trailing slash", "slides/env/", "slides", "env"},
		{"nested", "a/b/c/env", "a/b/c", "env"},
		{"dot segments", "./slides/../slides/env", "slides", "env"},
		{"absolute", "/tmp/work/env", "/tmp/work", "env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewLayout(tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.wantParent, got.Parent)
			assert.Equal(t, tt.wantName, got.Name)
		})
	}
}

func TestNewLayout_RejectsEmpty(t *testing.T) {
	for _, target := range []string{"", "  ", ".", "./", "a/.."} {
		_, err := NewLayout(target)
		assert.ErrorIs(t, err, ErrEmptyTarget, "target %q", target)
	}
}

func TestNewLayout_RejectsRootAndParent(t *testing.T) {
	for _, target := range []string{"..", "../..", "/", "//"} {
		_, err := NewLayout(target)
		assert.ErrorIs(t, err, ErrInvalidTarget, "target %q", target)
		assert.NotErrorIs(t, err, ErrEmptyTarget, "target %q", target)
	}
}

func TestLayout_In(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		baseDir    string
		wantTarget string
		wantParent string
	}{
		{"empty base keeps relative paths", "slides/env", "", "slides/env", "slides"},
		{"joins base dir", "slides/env", "/work", "/work/slides/env", "/work/slides"},
		{"absolute target ignores base dir", "/opt/envs/talk", "/home/u/proj", "/opt/envs/talk", "/opt/envs"},
		{"absolute target without base dir", "/opt/envs/talk", "", "/opt/envs/talk", "/opt/envs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, err := NewLayout(tt.target)
			require.NoError(t, err)

			got := layout.In(tt.baseDir)
			assert.Equal(t, tt.wantTarget, got.Target)
			assert.Equal(t, tt.wantParent, got.Parent)
			assert.Equal(t, layout.Name, got.Name)
		})
	}
}

func TestLayout_ManifestPath(t *testing.T) {
	layout, err := NewLayout("/work/slides/env")
	require.NoError(t, err)

	assert.Equal(t, "/work/slides/environment.yml", layout.ManifestPath(DefaultManifestFile))
	assert.Equal(t, "/work/slides/conf/env.yml", layout.ManifestPath("conf/env.yml"))
	assert.Equal(t, "/srv/manifests/talk.yml", layout.ManifestPath("/srv/manifests/talk.yml"))
}

func TestLayout_Hints(t *testing.T) {
	layout, err := NewLayout(DefaultTarget)
	require.NoError(t, err)

	assert.Equal(t, "slides/environment.yml", layout.ManifestPath(DefaultManifestFile))
	assert.Equal(t, "conda activate ./env", layout.ActivateHint("conda"))
}

func TestNewLayout_JoinInvariant(t *testing.T) {
	segment := rapid.StringMatching(`[a-zA-Z0-9_-]{1,12}`)

	rapid.Check(t, func(t *rapid.T) {
		parts := rapid.SliceOfN(segment, 1, 6).Draw(t, "parts")
		target := strings.Join(parts, "/")

		layout, err := NewLayout(target)
		if err != nil {
			t.Fatalf("NewLayout(%q): %v", target, err)
		}
		if got := filepath.Join(layout.Parent, layout.Name); got != filepath.Clean(target) {
			t.Fatalf("Join(%q, %q) = %q, want %q", layout.Parent, layout.Name, got, filepath.Clean(target))
		}
		if layout.Name != parts[len(parts)-1] {
			t.Fatalf("Name = %q, want %q", layout.Name, parts[len(parts)-1])
		}
	})
}
