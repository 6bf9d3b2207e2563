package filesystem

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/runoshun/envboot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_EnsureDir(t *testing.T) {
	t.Run("creates missing parents", func(t *testing.T) {
		root := t.TempDir()
		target := filepath.Join(root, "slides", "env")

		require.NoError(t, New().EnsureDir(target))

		info, err := os.Stat(target)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("succeeds when directory exists", func(t *testing.T) {
		root := t.TempDir()
		target := filepath.Join(root, "slides", "env")
		fsys := New()

		require.NoError(t, fsys.EnsureDir(target))
		require.NoError(t, fsys.EnsureDir(target))
	})

	t.Run("fails when a parent is a regular file", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "slides"), []byte("x"), 0o600))

		err := New().EnsureDir(filepath.Join(root, "slides", "env"))

		var fsErr *domain.FilesystemError
		require.ErrorAs(t, err, &fsErr)
		assert.Equal(t, "ensure directory", fsErr.Op)
		assert.ErrorIs(t, err, domain.ErrNotDirectory)
	})

	t.Run("fails when the target is a regular file", func(t *testing.T) {
		root := t.TempDir()
		target := filepath.Join(root, "env")
		require.NoError(t, os.WriteFile(target, []byte("x"), 0o600))

		err := New().EnsureDir(target)
		assert.ErrorIs(t, err, domain.ErrNotDirectory)
	})

	t.Run("fails without permission", func(t *testing.T) {
		if runtime.GOOS == "windows" || os.Geteuid() == 0 {
			t.Skip("permission bits are not enforced")
		}
		root := t.TempDir()
		locked := filepath.Join(root, "locked")
		require.NoError(t, os.Mkdir(locked, 0o500))
		t.Cleanup(func() { _ = os.Chmod(locked, 0o700) })

		err := New().EnsureDir(filepath.Join(locked, "slides", "env"))

		var fsErr *domain.FilesystemError
		require.ErrorAs(t, err, &fsErr)
		assert.ErrorIs(t, err, os.ErrPermission)
	})
}

func TestLocal_WriteReadFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "slides", "environment.yml")
	fsys := New()

	require.NoError(t, fsys.WriteFile(path, []byte("name: env\n")))

	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "name: env\n", string(data))
}

func TestLocal_ReadFile_Missing(t *testing.T) {
	_, err := New().ReadFile(filepath.Join(t.TempDir(), "missing.yml"))

	var fsErr *domain.FilesystemError
	require.ErrorAs(t, err, &fsErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocal_Exists(t *testing.T) {
	root := t.TempDir()
	fsys := New()

	ok, err := fsys.Exists(root)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = fsys.Exists(filepath.Join(root, "missing"))
	require.NoError(t, err)
	assert.False(t, ok)
}
