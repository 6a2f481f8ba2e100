package resolver

import (
	"path/filepath"

	"github.com/spf13/afero"

	"cppkg/pkg/fsutil"
	"cppkg/pkg/name"
	"cppkg/pkg/types"
)

// Paths are the directories an install works against.
type Paths struct {
	// ProjectDir holds the manifest, lockfile and generated files.
	ProjectDir string
	// DepsDir holds one slot per installed package.
	DepsDir string
	// CacheDir is shared by all projects and holds one entry per package version.
	CacheDir string
}

// ProjectSlot returns the directory of a package inside the project.
func (p Paths) ProjectSlot(pkgName string) string {
	return filepath.Join(p.DepsDir, name.ProjectKey(pkgName))
}

// CacheEntry returns the cache directory of one version of a package.
func (p Paths) CacheEntry(pkgName, version string) string {
	return filepath.Join(p.CacheDir, name.CacheKey(pkgName, version))
}

// Classify decides what has to happen for a package. The project slot is
// checked first, so a package that is both installed and cached is reported
// as AlreadyInstalled. Classify only reads the filesystem.
func Classify(fs afero.Fs, paths Paths, pkgName, version string) types.InstallState {
	if fsutil.Exists(fs, paths.ProjectSlot(pkgName)) {
		return types.AlreadyInstalled
	}
	if fsutil.Exists(fs, paths.CacheEntry(pkgName, version)) {
		return types.Cached
	}
	return types.NeedsFetch
}
