// File: cpp-package-manager/pkg/resolver/install.go
package resolver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"go.trai.ch/zerr"

	"cppkg/pkg/config"
	"cppkg/pkg/fsutil"
	"cppkg/pkg/resolver/dependency"
	"cppkg/pkg/shell"
	"cppkg/pkg/spec"
	"cppkg/pkg/types"
	"cppkg/pkg/ui"
)

// Options are the per-invocation switches of `cppkg install`.
type Options struct {
	// Packages are `name` or `name=interval` arguments. When set, the lock
	// file is not consulted.
	Packages []string
	Quiet    bool
	Verbose  bool
	// Strict turns per-package fetch failures into an install error.
	Strict bool
}

// Installer runs `cppkg install`.
type Installer struct {
	fs       afero.Fs
	paths    Paths
	resolver Resolver
	remote   Remote
	store    LockfileStore
	runner   shell.Runner
	out      io.Writer
	logger   *log.Logger
}

// NewInstaller creates a new Installer.
func NewInstaller(fs afero.Fs, paths Paths, resolver Resolver, remote Remote, store LockfileStore, runner shell.Runner, out io.Writer, logger *log.Logger) *Installer {
	return &Installer{
		fs:       fs,
		paths:    paths,
		resolver: resolver,
		remote:   remote,
		store:    store,
		runner:   runner,
		out:      out,
		logger:   logger,
	}
}

// Install resolves and fetches the project's dependencies. Configuration and
// argument errors are returned before anything is written. Fetch failures
// are printed and only returned in strict mode.
func (i *Installer) Install(ctx context.Context, manifestFuture *config.Future, opts Options) error {
	manifest, err := manifestFuture.Get()
	if err != nil {
		return err
	}
	printer := ui.NewPrinter(i.out, opts.Quiet, opts.Verbose)

	var (
		timestamp string
		pkgConfig *types.PackageConfig
	)
	if manifest != nil {
		timestamp = manifest.Timestamp
		pkgConfig = &manifest.PackageConfig
	}

	lock := LoadLockfile(i.store, opts, timestamp, i.logger)
	deps, err := dependency.Collect(opts.Packages, pkgConfig, lock == nil)
	if err != nil {
		return err
	}

	var resolved types.ResolvedDeps
	if lock != nil {
		i.logger.Debug("using lock file", "timestamp", lock.Timestamp)
		resolved = lock.Dependencies
	} else {
		printer.Status("Resolving dependencies...")
		resolved, err = i.resolver.Resolve(ctx, deps)
		if err != nil {
			return err
		}
	}

	summary, err := i.download(ctx, resolved, printer)
	if err != nil {
		return err
	}

	if manifest == nil {
		i.logger.Debug("no manifest found, skipping lock file and build files", "path", filepath.Join(i.paths.ProjectDir, config.ManifestFile))
	} else {
		if lock == nil {
			if err := i.record(manifest, deps, resolved, opts); err != nil {
				return err
			}
		}
		if err := i.generateCMakeFile(resolved, summary); err != nil {
			return zerr.Wrap(err, "failed to generate cmake file")
		}
	}

	if opts.Strict && len(summary.Failed) > 0 {
		errs := make([]error, 0, len(summary.Failed))
		for _, out := range summary.Failed {
			errs = append(errs, out.Err)
		}
		return fmt.Errorf("%w: %w", types.ErrFetchFailed, errors.Join(errs...))
	}

	if manifest != nil {
		if err := i.runHooks(ctx, manifest, opts.Quiet); err != nil {
			return err
		}
	}
	return nil
}

func (i *Installer) download(ctx context.Context, deps types.ResolvedDeps, printer *ui.Printer) (Summary, error) {
	printer.Status("Fetching...")
	printer.Blank()

	if err := fsutil.CreateDirectories(i.fs, i.paths.CacheDir); err != nil {
		return Summary{}, err
	}
	if err := fsutil.CreateDirectories(i.fs, i.paths.DepsDir); err != nil {
		return Summary{}, err
	}
	summary := NewFetcher(i.fs, i.paths, i.remote, printer, i.logger).Fetch(ctx, deps)

	printer.Blank()
	printer.Done()
	return summary, nil
}

// record writes the resolution back to the project. Packages named on the
// command line are added to the manifest, and "latest" requests are pinned to
// the interval of the version that was resolved, so the next run reproduces
// this one. The lock file is stamped with the resulting manifest timestamp.
func (i *Installer) record(manifest *config.Manifest, deps types.DependencySet, resolved types.ResolvedDeps, opts Options) error {
	requested := make(map[string]bool, len(opts.Packages))
	for _, token := range opts.Packages {
		if s, err := spec.Parse(token); err == nil {
			requested[s.Name] = true
		}
	}

	changed := false
	for _, pkgName := range deps.Names() {
		want := deps[pkgName]
		if want.Interval != spec.Latest && !requested[pkgName] {
			continue
		}
		interval := want.Interval
		if interval == spec.Latest {
			pinned, err := spec.ToInterval(resolved[pkgName].Version)
			if err != nil {
				return err
			}
			interval = pinned
		}
		if manifest.Dependencies == nil {
			manifest.Dependencies = make(map[string]string)
		}
		if manifest.Dependencies[pkgName] != interval {
			manifest.Dependencies[pkgName] = interval
			changed = true
		}
	}

	if changed {
		if err := config.SaveManifest(i.fs, manifest); err != nil {
			return err
		}
	}
	return i.store.Save(&types.Lockfile{Timestamp: manifest.Timestamp, Dependencies: resolved})
}

func (i *Installer) generateCMakeFile(deps types.ResolvedDeps, summary Summary) error {
	failed := make(map[string]bool, len(summary.Failed))
	for _, out := range summary.Failed {
		failed[out.Name] = true
	}

	var contentBuilder strings.Builder
	contentBuilder.WriteString("# This file is auto-generated by cppkg.\n")
	contentBuilder.WriteString("# Do not edit this file manually.\n\n")
	contentBuilder.WriteString("# Add include directories for all installed dependencies.\n")

	for _, pkgName := range deps.Names() {
		if failed[pkgName] {
			continue
		}
		includePath := filepath.Join(i.paths.ProjectSlot(pkgName), "include")
		if rel, err := filepath.Rel(i.paths.ProjectDir, includePath); err == nil {
			includePath = rel
		}
		fmt.Fprintf(&contentBuilder, "include_directories(${CMAKE_CURRENT_SOURCE_DIR}/%s)\n", filepath.ToSlash(includePath))
	}

	cmakePath := filepath.Join(i.paths.ProjectDir, config.CMakeFile)
	i.logger.Debug("generating cmake file", "path", cmakePath)
	return afero.WriteFile(i.fs, cmakePath, []byte(contentBuilder.String()), 0o644)
}

func (i *Installer) runHooks(ctx context.Context, manifest *config.Manifest, quiet bool) error {
	script, ok := manifest.Scripts["postinstall"]
	if !ok {
		return nil
	}

	i.logger.Info("executing post-install hook", "script", script)
	res := i.runner.Run(ctx, shell.Command{
		Name:  "sh",
		Args:  []string{"-c", script},
		Dir:   i.paths.ProjectDir,
		Quiet: quiet,
	})
	if res.Failed() {
		return zerr.Wrap(res.Error(), "error running post-install hook")
	}
	return nil
}
