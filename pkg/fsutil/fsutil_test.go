package fsutil_test

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cppkg/pkg/fsutil"
)

func TestCopyRecursive(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cache/fmt@10.0.0/include/fmt/core.h", []byte("#pragma once\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/cache/fmt@10.0.0/README.md", []byte("fmt"), 0o644))

	require.NoError(t, fsutil.CopyRecursive(fs, "/cache/fmt@10.0.0", "/project/deps/fmt"))

	data, err := afero.ReadFile(fs, "/project/deps/fmt/include/fmt/core.h")
	require.NoError(t, err)
	assert.Equal(t, "#pragma once\n", string(data))
	assert.True(t, fsutil.Exists(fs, "/project/deps/fmt/README.md"))

	// source is untouched
	assert.True(t, fsutil.Exists(fs, "/cache/fmt@10.0.0/README.md"))
}

func TestCopyRecursive_MissingSource(t *testing.T) {
	fs := afero.NewMemMapFs()
	err := fsutil.CopyRecursive(fs, "/cache/nope", "/project/deps/nope")
	require.Error(t, err)
	assert.False(t, fsutil.Exists(fs, "/project/deps/nope"))
}

func TestCopyRecursive_OsFs(t *testing.T) {
	root := t.TempDir()
	fs := afero.NewOsFs()
	src := filepath.Join(root, "src")
	require.NoError(t, fs.MkdirAll(filepath.Join(src, "a"), 0o755))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(src, "a", "b.txt"), []byte("b"), 0o644))

	dst := filepath.Join(root, "dst")
	require.NoError(t, fsutil.CopyRecursive(fs, src, dst))

	data, err := afero.ReadFile(fs, filepath.Join(dst, "a", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "b", string(data))
}

func TestCreateDirectories_Idempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fsutil.CreateDirectories(fs, "/home/u/.cppkg/cache"))
	require.NoError(t, fsutil.CreateDirectories(fs, "/home/u/.cppkg/cache"))

	ok, err := afero.DirExists(fs, "/home/u/.cppkg/cache")
	require.NoError(t, err)
	assert.True(t, ok)
}
