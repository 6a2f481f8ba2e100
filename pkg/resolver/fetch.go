package resolver

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"cppkg/pkg/fsutil"
	"cppkg/pkg/name"
	"cppkg/pkg/types"
	"cppkg/pkg/ui"
)

// Outcome is the result of materializing one package.
type Outcome struct {
	Name    string
	Version string
	State   types.InstallState
	// Err wraps types.ErrCloneFailed or types.ErrCopyFailed; nil on success.
	Err error
}

// Summary collects the outcomes of one fetch pass.
type Summary struct {
	Installed    []Outcome
	Materialized []Outcome
	Failed       []Outcome
	// AllInstalled is set when every package was already in the project.
	AllInstalled bool
}

// Fetcher brings resolved packages into the project, going through the cache.
type Fetcher struct {
	fs      afero.Fs
	paths   Paths
	remote  Remote
	printer *ui.Printer
	logger  *log.Logger
}

// NewFetcher creates a new Fetcher.
func NewFetcher(fs afero.Fs, paths Paths, remote Remote, printer *ui.Printer, logger *log.Logger) *Fetcher {
	return &Fetcher{fs: fs, paths: paths, remote: remote, printer: printer, logger: logger}
}

// Fetch materializes every package in deps, in name order. A failing package
// does not stop the loop; it is reported in Summary.Failed.
func (f *Fetcher) Fetch(ctx context.Context, deps types.ResolvedDeps) Summary {
	var sum Summary
	for _, pkgName := range deps.Names() {
		pkg := deps[pkgName]
		state := Classify(f.fs, f.paths, pkgName, pkg.Version)
		f.printer.Diagnostics(pkgName, pkg.Version,
			name.CacheKey(pkgName, pkg.Version), name.ProjectKey(pkgName),
			fsutil.Exists(f.fs, f.paths.CacheEntry(pkgName, pkg.Version)))

		out := f.Materialize(ctx, pkgName, pkg, state)
		switch {
		case out.Err != nil:
			sum.Failed = append(sum.Failed, out)
		case out.State == types.AlreadyInstalled:
			sum.Installed = append(sum.Installed, out)
		default:
			sum.Materialized = append(sum.Materialized, out)
		}
		if out.State != types.AlreadyInstalled {
			f.printer.InstallStatus(out.Err == nil, pkgName, pkg.Version)
		}
	}

	if len(sum.Installed) == len(deps) {
		sum.AllInstalled = true
		f.printer.Warning("Already installed")
	}
	return sum
}

// Materialize acts on one package according to its classified state.
func (f *Fetcher) Materialize(ctx context.Context, pkgName string, pkg types.ResolvedPackage, state types.InstallState) Outcome {
	out := Outcome{Name: pkgName, Version: pkg.Version, State: state}
	cachePath := f.paths.CacheEntry(pkgName, pkg.Version)

	switch state {
	case types.AlreadyInstalled:
		return out
	case types.NeedsFetch:
		res := f.remote.Clone(ctx, pkgName, pkg.Version, cachePath)
		if res.Failed() {
			f.logger.Debug("clone failed", "package", pkgName, "version", pkg.Version, "output", res.Output)
			if err := f.fs.RemoveAll(cachePath); err != nil {
				f.logger.Warn("could not remove partial cache entry", "path", cachePath, "err", err)
			}
			out.Err = fmt.Errorf("%w: %s@%s: %w", types.ErrCloneFailed, pkgName, pkg.Version, res.Error())
			return out
		}
	}

	if err := f.copyToProject(pkgName, cachePath); err != nil {
		out.Err = err
	}
	return out
}

func (f *Fetcher) copyToProject(pkgName, cachePath string) error {
	slot := f.paths.ProjectSlot(pkgName)
	if err := fsutil.CopyRecursive(f.fs, cachePath, slot); err != nil {
		if rmErr := f.fs.RemoveAll(slot); rmErr != nil {
			f.logger.Warn("could not remove partial project entry", "path", slot, "err", rmErr)
		}
		return fmt.Errorf("%w: %s: %w", types.ErrCopyFailed, pkgName, err)
	}
	return nil
}
