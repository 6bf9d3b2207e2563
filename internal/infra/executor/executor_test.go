package executor

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/runoshun/envboot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shell(script, dir string) *domain.ExecCommand {
	return domain.NewCommand("sh", []string{"-c", script}, dir)
}

func TestClient_Execute(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}

	client := NewClient()

	t.Run("executes simple echo command", func(t *testing.T) {
		res, err := client.Execute(shell("echo hello", ""))
		require.NoError(t, err)
		assert.Equal(t, "hello\n", string(res.Output))
		assert.Equal(t, 0, res.ExitCode)
	})

	t.Run("executes command in specified directory", func(t *testing.T) {
		dir := t.TempDir()
		res, err := client.Execute(shell("pwd", dir))
		require.NoError(t, err)
		assert.Contains(t, strings.TrimSpace(string(res.Output)), dir)
	})

	t.Run("returns error for non-existent command", func(t *testing.T) {
		_, err := client.Execute(domain.NewCommand("nonexistent-command-xyz", nil, ""))
		require.Error(t, err)
	})

	t.Run("reports exit code for failing command", func(t *testing.T) {
		res, err := client.Execute(shell("echo boom; exit 3", ""))
		require.NoError(t, err)
		assert.Equal(t, 3, res.ExitCode)
		assert.False(t, res.Success())
		assert.Equal(t, "boom\n", string(res.Output))
	})

	t.Run("keeps stderr out of output", func(t *testing.T) {
		script := `echo "==> WARNING: A newer version of conda exists. <==" >&2; printf 'name: env\ndependencies:\n  - python\n'`
		res, err := client.Execute(shell(script, ""))
		require.NoError(t, err)
		assert.Equal(t, "name: env\ndependencies:\n  - python\n", string(res.Output))
		assert.Equal(t, "==> WARNING: A newer version of conda exists. <==\n", string(res.Stderr))
	})

	t.Run("keeps stderr of failing command", func(t *testing.T) {
		res, err := client.Execute(shell("echo EnvironmentLocationNotFound >&2; exit 1", ""))
		require.NoError(t, err)
		assert.Equal(t, 1, res.ExitCode)
		assert.Empty(t, res.Output)
		assert.Equal(t, "EnvironmentLocationNotFound\n", string(res.Stderr))
	})
}

func TestClient_ExecuteInteractive(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}

	t.Run("wires streams", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		client := NewClientWithIO(strings.NewReader("y\n"), &stdout, &stderr)

		res, err := client.ExecuteInteractive(shell("read answer; echo got $answer; echo warn >&2", ""))
		require.NoError(t, err)
		assert.True(t, res.Success())
		assert.Empty(t, res.Output)
		assert.Equal(t, "got y\n", stdout.String())
		assert.Equal(t, "warn\n", stderr.String())
	})

	t.Run("reports exit code", func(t *testing.T) {
		client := NewClientWithIO(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
		res, err := client.ExecuteInteractive(shell("exit 2", ""))
		require.NoError(t, err)
		assert.Equal(t, 2, res.ExitCode)
	})

	t.Run("returns error when directory is missing", func(t *testing.T) {
		client := NewClientWithIO(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
		_, err := client.ExecuteInteractive(shell("true", "/nonexistent/dir/xyz"))
		require.Error(t, err)
	})
}

func TestNewClient(t *testing.T) {
	client := NewClient()
	assert.NotNil(t, client)
}
