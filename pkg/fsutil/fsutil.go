// File: pkg/fsutil/fsutil.go

// Package fsutil holds the filesystem primitives used to move packages between
// the cache and a project.
package fsutil

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.trai.ch/zerr"
)

// CreateDirectories creates path and any missing parents. Existing directories are left alone.
func CreateDirectories(fs afero.Fs, path string) error {
	if err := fs.MkdirAll(path, 0o755); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", path)
	}
	return nil
}

// Exists reports whether path exists.
func Exists(fs afero.Fs, path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}

// CopyRecursive copies the tree rooted at src to dst. Symlinks are skipped.
func CopyRecursive(fs afero.Fs, src, dst string) error {
	err := afero.Walk(fs, src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode()&os.ModeSymlink != 0 {
			return nil
		}
		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		dstPath := filepath.Join(dst, relPath)
		if info.IsDir() {
			return fs.MkdirAll(dstPath, info.Mode().Perm()|0o700)
		}
		return copyFile(fs, path, dstPath, info.Mode().Perm())
	})
	if err != nil {
		return zerr.With(zerr.With(zerr.Wrap(err, "failed to copy directory"), "src", src), "dst", dst)
	}
	return nil
}

func copyFile(fs afero.Fs, src, dst string, perm os.FileMode) error {
	srcFile, err := fs.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := fs.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dstFile, srcFile); err != nil {
		dstFile.Close()
		return err
	}
	return dstFile.Close()
}
