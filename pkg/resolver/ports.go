package resolver

import (
	"context"

	"cppkg/pkg/shell"
	"cppkg/pkg/types"
)

// Resolver turns requested intervals into concrete versions.
//
//go:generate mockgen -source=ports.go -destination=mocks/mock_ports.go -package=mocks
type Resolver interface {
	// Resolve pins every package in deps to one version.
	Resolve(ctx context.Context, deps types.DependencySet) (types.ResolvedDeps, error)
}

// Remote clones a package at a given version.
type Remote interface {
	// Clone populates dest with the sources of name at version.
	Clone(ctx context.Context, name, version, dest string) shell.Result
}

// VersionLister lists the versions published for a package.
type VersionLister interface {
	ListVersions(ctx context.Context, name string) ([]string, error)
}

// LockfileStore persists the resolved dependency set.
type LockfileStore interface {
	// Load returns nil, nil if no lockfile exists.
	Load() (*types.Lockfile, error)
	Save(lock *types.Lockfile) error
}
