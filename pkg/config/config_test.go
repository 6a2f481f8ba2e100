package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cppkg/pkg/config"
	"cppkg/pkg/types"
)

func TestLoadSettingsFrom_Defaults(t *testing.T) {
	s, err := config.LoadSettingsFrom(filepath.Join(t.TempDir(), "missing.toml"), "/home/u/.cppkg/cache")
	require.NoError(t, err)

	assert.Equal(t, "/home/u/.cppkg/cache", s.CacheDir)
	assert.Equal(t, config.ModulesDir, s.DepsDir)
	assert.Equal(t, config.DefaultRemoteURL, s.RemoteURL)
	assert.Equal(t, config.BackendGit, s.RemoteBackend)
	assert.False(t, s.Strict)
}

func TestLoadSettingsFrom_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
cache_dir = "/srv/cppkg-cache"
deps_dir = "deps"

[remote]
backend = "go-git"

[install]
strict = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("CPPKG_DEPS_DIR", "third_party")

	s, err := config.LoadSettingsFrom(path, "/unused")
	require.NoError(t, err)

	assert.Equal(t, "/srv/cppkg-cache", s.CacheDir)
	assert.Equal(t, "third_party", s.DepsDir, "environment overrides the file")
	assert.Equal(t, config.BackendGoGit, s.RemoteBackend)
	assert.True(t, s.Strict)
}

func TestLoadSettingsFrom_InvalidBackend(t *testing.T) {
	t.Setenv("CPPKG_REMOTE_BACKEND", "svn")
	_, err := config.LoadSettingsFrom("", "/cache")
	require.Error(t, err)
}

func TestLoadManifest(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := `
name = "demo"
version = "0.1.0"

[dependencies]
fmt = ">=10.0.0 and <11.0.0"
"boostorg/asio" = "latest"
`
	require.NoError(t, afero.WriteFile(fs, "/proj/cppkg.toml", []byte(content), 0o644))

	m, err := config.LoadManifest(fs, "/proj/cppkg.toml")
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, "demo", m.Name)
	assert.Equal(t, map[string]string{
		"fmt":           ">=10.0.0 and <11.0.0",
		"boostorg/asio": "latest",
	}, m.Dependencies)
	assert.NotEmpty(t, m.Timestamp)
}

func TestLoadManifest_Missing(t *testing.T) {
	m, err := config.LoadManifest(afero.NewMemMapFs(), "/proj/cppkg.toml")
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestLoadManifest_NoDependenciesKey(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/proj/cppkg.toml", []byte("name = \"demo\"\n"), 0o644))

	m, err := config.LoadManifest(fs, "/proj/cppkg.toml")
	require.NoError(t, err)
	assert.Nil(t, m.Dependencies)
}

func TestLoadManifest_Malformed(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/proj/cppkg.toml", []byte("name = \n"), 0o644))

	_, err := config.LoadManifest(fs, "/proj/cppkg.toml")
	require.Error(t, err)
}

func TestSaveManifest_KeepsDependencies(t *testing.T) {
	fs := afero.NewMemMapFs()
	m := &config.Manifest{
		PackageConfig: types.PackageConfig{
			Name:         "demo",
			Version:      "0.1.0",
			Dependencies: map[string]string{"fmt": ">=10.0.0 and <11.0.0"},
		},
		Path: "/proj/cppkg.toml",
	}
	require.NoError(t, config.SaveManifest(fs, m))
	assert.NotEmpty(t, m.Timestamp)

	loaded, err := config.LoadManifest(fs, "/proj/cppkg.toml")
	require.NoError(t, err)
	assert.Equal(t, m.Dependencies, loaded.Dependencies)
	assert.Equal(t, m.Timestamp, loaded.Timestamp)
}

func TestLockStore(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := config.NewLockStore(fs, "/proj/cppkg.lock")

	lock, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, lock, "missing lock file is not an error")

	want := &types.Lockfile{
		Timestamp: "2026-01-02T03:04:05Z",
		Dependencies: types.ResolvedDeps{
			"fmt":           {Version: "10.1.1", Kind: types.HeaderOnlyLib},
			"boostorg/asio": {Version: "1.28.0", Kind: types.BuildReqLib, Dependencies: map[string]string{"boostorg/system": "1.28.0"}},
		},
	}
	require.NoError(t, store.Save(want))

	raw, err := afero.ReadFile(fs, "/proj/cppkg.lock")
	require.NoError(t, err)
	assert.Contains(t, string(raw), "package_type: build-required-lib")
	assert.Contains(t, string(raw), "automatically generated")

	exists, err := afero.Exists(fs, "/proj/cppkg.lock.tmp")
	require.NoError(t, err)
	assert.False(t, exists)

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLockStore_Corrupt(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/proj/cppkg.lock", []byte("dependencies: [oops"), 0o644))

	_, err := config.NewLockStore(fs, "/proj/cppkg.lock").Load()
	require.Error(t, err)
}

func TestFuture(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/proj/cppkg.toml", []byte("name = \"demo\"\n"), 0o644))

	f := config.LoadManifestAsync(fs, "/proj/cppkg.toml")
	m, err := f.Get()
	require.NoError(t, err)
	assert.Equal(t, "demo", m.Name)

	m, err = config.Resolved(nil).Get()
	require.NoError(t, err)
	assert.Nil(t, m)
}
