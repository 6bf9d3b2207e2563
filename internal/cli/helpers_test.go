package cli

import (
	"bytes"
	"testing"

	"github.com/runoshun/envboot/internal/app"
	"github.com/runoshun/envboot/internal/infra/config"
	"github.com/runoshun/envboot/internal/infra/filesystem"
	"github.com/runoshun/envboot/internal/infra/manifest"
	"github.com/runoshun/envboot/internal/testutil"
)

// testEnv bundles a container backed by a temporary work directory.
type testEnv struct {
	container *app.Container
	exec      *testutil.MockCommandExecutor
	logger    *testutil.MockLogger
	workDir   string
	globalDir string
}

// newTestEnv uses the real filesystem, config and manifest implementations
// and a mock executor, so no environment tool is needed.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	workDir := t.TempDir()
	globalDir := t.TempDir()
	exec := testutil.NewMockCommandExecutor()
	logger := testutil.NewMockLogger()

	c := app.NewWithDeps(
		app.Config{WorkDir: workDir},
		filesystem.New(),
		exec,
		manifest.NewCodec(),
		config.NewLoaderWithGlobalDir(workDir, globalDir),
		config.NewManagerWithGlobalDir(workDir, globalDir),
		logger,
	)

	return &testEnv{
		container: c,
		exec:      exec,
		logger:    logger,
		workDir:   workDir,
		globalDir: globalDir,
	}
}

// run executes the root command with args and returns stdout, stderr and the error.
func (e *testEnv) run(args ...string) (string, string, error) {
	root := NewRootCommand(e.container, "test-version")
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
