// File: cpp-package-manager/pkg/config/manifest.go
package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"go.trai.ch/zerr"

	"cppkg/pkg/types"
)

// Manifest is a loaded cppkg.toml together with where it came from and its timestamp.
type Manifest struct {
	types.PackageConfig
	Path string
	// Timestamp identifies the manifest revision; a lockfile is only trusted
	// when it was written against the same timestamp.
	Timestamp string
}

// LoadManifest reads and parses the manifest at path. A missing manifest is
// not an error: it returns nil so that `install <pkg>` works outside a project.
func LoadManifest(afs afero.Fs, path string) (*Manifest, error) {
	data, err := afero.ReadFile(afs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path)
	}

	var cfg types.PackageConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse manifest"), "path", path)
	}

	ts, err := Timestamp(afs, path)
	if err != nil {
		return nil, err
	}
	return &Manifest{PackageConfig: cfg, Path: path, Timestamp: ts}, nil
}

// SaveManifest writes the manifest back to m.Path and refreshes m.Timestamp.
func SaveManifest(afs afero.Fs, m *Manifest) error {
	data, err := toml.Marshal(m.PackageConfig)
	if err != nil {
		return zerr.Wrap(err, "failed to encode manifest")
	}
	if err := afero.WriteFile(afs, m.Path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write manifest"), "path", m.Path)
	}
	ts, err := Timestamp(afs, m.Path)
	if err != nil {
		return err
	}
	m.Timestamp = ts
	return nil
}

// Timestamp returns the modification time of the file at path.
func Timestamp(afs afero.Fs, path string) (string, error) {
	info, err := afs.Stat(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to stat manifest"), "path", path)
	}
	return info.ModTime().UTC().Format(time.RFC3339Nano), nil
}
