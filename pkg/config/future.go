// File: cpp-package-manager/pkg/config/future.go
package config

import (
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// Future is a manifest being loaded in the background.
type Future struct {
	g        errgroup.Group
	manifest *Manifest
}

// LoadManifestAsync starts loading the manifest at path and returns immediately.
func LoadManifestAsync(afs afero.Fs, path string) *Future {
	f := &Future{}
	f.g.Go(func() error {
		m, err := LoadManifest(afs, path)
		f.manifest = m
		return err
	})
	return f
}

// Resolved returns a Future that already holds m (which may be nil).
func Resolved(m *Manifest) *Future {
	return &Future{manifest: m}
}

// Get blocks until loading finishes. The manifest is nil when the file does not exist.
func (f *Future) Get() (*Manifest, error) {
	if err := f.g.Wait(); err != nil {
		return nil, err
	}
	return f.manifest, nil
}
