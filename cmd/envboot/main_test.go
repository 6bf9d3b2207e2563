package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Version(t *testing.T) {
	testChdir(t, t.TempDir())

	var stdout, stderr bytes.Buffer
	err := run([]string{"--version"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "envboot version dev")
}

func TestRun_UnknownCommand(t *testing.T) {
	testChdir(t, t.TempDir())

	var stdout, stderr bytes.Buffer
	err := run([]string{"no-such-command"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestRun_ConfigTemplate(t *testing.T) {
	testChdir(t, t.TempDir())

	var stdout, stderr bytes.Buffer
	err := run([]string{"config", "template"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "[env]")
}

// testChdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func testChdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
