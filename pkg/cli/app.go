package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"

	"cppkg/pkg/config"
	"cppkg/pkg/fsutil"
	"cppkg/pkg/git"
	"cppkg/pkg/name"
	"cppkg/pkg/resolver"
	"cppkg/pkg/resolver/conflicts"
	"cppkg/pkg/shell"
	"cppkg/pkg/types"
	"cppkg/pkg/ui"
)

type remoteSource interface {
	resolver.Remote
	resolver.VersionLister
}

// App wires the install pipeline to the real filesystem, git and settings.
type App struct {
	fs           afero.Fs
	workDir      string
	stdout       io.Writer
	stderr       io.Writer
	loadSettings func() (*config.Settings, error)
}

// NewApp creates an App working in workDir.
func NewApp(fs afero.Fs, workDir string, stdout, stderr io.Writer) *App {
	return &App{
		fs:           fs,
		workDir:      workDir,
		stdout:       stdout,
		stderr:       stderr,
		loadSettings: config.LoadSettings,
	}
}

// Install runs `cppkg install`.
func (a *App) Install(ctx context.Context, opts resolver.Options) error {
	// The manifest is read while settings are loaded and collaborators built.
	future := config.LoadManifestAsync(a.fs, filepath.Join(a.workDir, config.ManifestFile))

	settings, err := a.loadSettings()
	if err != nil {
		return err
	}
	logger := ui.NewLogger(a.stderr, opts.Quiet, opts.Verbose)
	opts.Strict = opts.Strict || settings.Strict

	runner := shell.NewExecutor(logger)
	var remote remoteSource
	switch settings.RemoteBackend {
	case config.BackendGoGit:
		remote = git.NewGoGitRemote(settings.RemoteURL)
	default:
		remote = git.NewShellRemote(settings.RemoteURL, runner)
	}

	depsDir := settings.DepsDir
	if !filepath.IsAbs(depsDir) {
		depsDir = filepath.Join(a.workDir, depsDir)
	}
	paths := resolver.Paths{
		ProjectDir: a.workDir,
		DepsDir:    depsDir,
		CacheDir:   settings.CacheDir,
	}
	logger.Debug("paths", "project", paths.ProjectDir, "deps", paths.DepsDir, "cache", paths.CacheDir, "backend", settings.RemoteBackend)

	installer := resolver.NewInstaller(
		a.fs,
		paths,
		conflicts.New(remote, logger),
		remote,
		config.NewLockStore(a.fs, filepath.Join(a.workDir, config.LockFileName)),
		runner,
		a.stdout,
		logger,
	)
	return installer.Install(ctx, future, opts)
}

// Init writes a new cppkg.toml with an empty dependency table.
func (a *App) Init(_ context.Context, projectName string) error {
	if err := name.Validate(projectName); err != nil {
		return err
	}
	path := filepath.Join(a.workDir, config.ManifestFile)
	if fsutil.Exists(a.fs, path) {
		fmt.Fprintf(a.stdout, "%s already exists.\n", config.ManifestFile)
		return nil
	}

	m := &config.Manifest{
		PackageConfig: types.PackageConfig{
			Name:         projectName,
			Version:      "0.1.0",
			Dependencies: make(map[string]string),
		},
		Path: path,
	}
	if err := config.SaveManifest(a.fs, m); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Initialized empty C++ project (created %s).\n", config.ManifestFile)
	return nil
}
