// File: cpp-package-manager/pkg/config/lockfile.go
package config

import (
	"bytes"
	"errors"
	"io/fs"

	"github.com/spf13/afero"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"cppkg/pkg/types"
)

const lockHeader = "# This file is automatically generated by cppkg.\n# Please do not edit this file.\n"

// LockStore reads and writes cppkg.lock.
type LockStore struct {
	fs   afero.Fs
	path string
}

// NewLockStore creates a LockStore for the lockfile at path.
func NewLockStore(afs afero.Fs, path string) *LockStore {
	return &LockStore{fs: afs, path: path}
}

// Load reads the lockfile. It returns nil without error when none exists.
func (s *LockStore) Load() (*types.Lockfile, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read lock file"), "path", s.path)
	}

	var lock types.Lockfile
	if err := yaml.Unmarshal(data, &lock); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse lock file"), "path", s.path)
	}
	if lock.Dependencies == nil {
		lock.Dependencies = make(types.ResolvedDeps)
	}
	return &lock, nil
}

// Save writes the lockfile through a temporary file and a rename.
func (s *LockStore) Save(lock *types.Lockfile) error {
	var buf bytes.Buffer
	buf.WriteString(lockHeader)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(lock); err != nil {
		return zerr.Wrap(err, "failed to encode lock file")
	}
	if err := enc.Close(); err != nil {
		return zerr.Wrap(err, "failed to encode lock file")
	}

	tmpPath := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmpPath, buf.Bytes(), 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write lock file"), "path", tmpPath)
	}
	if err := s.fs.Rename(tmpPath, s.path); err != nil {
		_ = s.fs.Remove(tmpPath)
		return zerr.With(zerr.Wrap(err, "failed to rename lock file"), "path", s.path)
	}
	return nil
}
