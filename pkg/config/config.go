// File: cpp-package-manager/pkg/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.trai.ch/zerr"
)

const (
	// ManifestFile is the name of the package manifest.
	ManifestFile = "cppkg.toml"
	// LockFileName is the name of the lock file.
	LockFileName = "cppkg.lock"
	// CMakeFile is the generated include file for CMake projects.
	CMakeFile = "cppkg.cmake"
	// ModulesDir is the default directory where dependencies are installed.
	ModulesDir = "cpp_modules"
	// EnvPrefix prefixes environment overrides, e.g. CPPKG_CACHE_DIR.
	EnvPrefix = "CPPKG"
)

// Setting keys.
const (
	KeyCacheDir      = "cache_dir"
	KeyDepsDir       = "deps_dir"
	KeyRemoteURL     = "remote.url"
	KeyRemoteBackend = "remote.backend"
	KeyStrict        = "install.strict"
)

// Remote backends.
const (
	BackendGit   = "git"
	BackendGoGit = "go-git"
)

// DefaultRemoteURL maps a package name to its repository.
const DefaultRemoteURL = "https://github.com/%s.git"

// Settings are the user-level options that do not belong in a project manifest.
type Settings struct {
	CacheDir      string
	DepsDir       string
	RemoteURL     string
	RemoteBackend string
	Strict        bool
}

// HomeDir returns ~/.cppkg.
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".cppkg"), nil
}

// LoadSettings reads ~/.cppkg/config.toml (if present) and CPPKG_* environment variables.
func LoadSettings() (*Settings, error) {
	home, err := HomeDir()
	if err != nil {
		return nil, err
	}
	return LoadSettingsFrom(filepath.Join(home, "config.toml"), filepath.Join(home, "cache"))
}

// LoadSettingsFrom reads settings from configPath, which may not exist.
// defaultCacheDir is used when nothing overrides cache_dir.
func LoadSettingsFrom(configPath, defaultCacheDir string) (*Settings, error) {
	v := viper.New()

	v.SetDefault(KeyCacheDir, defaultCacheDir)
	v.SetDefault(KeyDepsDir, ModulesDir)
	v.SetDefault(KeyRemoteURL, DefaultRemoteURL)
	v.SetDefault(KeyRemoteBackend, BackendGit)
	v.SetDefault(KeyStrict, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			v.SetConfigType("toml")
			if err := v.ReadInConfig(); err != nil {
				return nil, zerr.With(zerr.Wrap(err, "failed to read settings"), "path", configPath)
			}
		}
	}

	s := &Settings{
		CacheDir:      v.GetString(KeyCacheDir),
		DepsDir:       v.GetString(KeyDepsDir),
		RemoteURL:     v.GetString(KeyRemoteURL),
		RemoteBackend: v.GetString(KeyRemoteBackend),
		Strict:        v.GetBool(KeyStrict),
	}
	if s.RemoteBackend != BackendGit && s.RemoteBackend != BackendGoGit {
		return nil, zerr.With(zerr.New("unknown remote backend, expected \"git\" or \"go-git\""), "backend", s.RemoteBackend)
	}
	if !strings.Contains(s.RemoteURL, "%s") {
		return nil, zerr.With(zerr.New("remote url must contain %s for the package name"), "url", s.RemoteURL)
	}
	return s, nil
}
