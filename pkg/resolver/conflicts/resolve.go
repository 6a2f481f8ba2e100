// Package conflicts pins requested version intervals to published versions.
package conflicts

import (
	"context"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/charmbracelet/log"

	"cppkg/pkg/resolver"
	"cppkg/pkg/spec"
	"cppkg/pkg/types"
)

// TagResolver resolves each package to the highest tagged version that
// satisfies its interval. Transitive dependencies are not followed.
type TagResolver struct {
	lister resolver.VersionLister
	logger *log.Logger
}

// New creates a TagResolver.
func New(lister resolver.VersionLister, logger *log.Logger) *TagResolver {
	return &TagResolver{lister: lister, logger: logger}
}

// Resolve pins every package in deps. It fails on the first package that has
// no matching version.
func (r *TagResolver) Resolve(ctx context.Context, deps types.DependencySet) (types.ResolvedDeps, error) {
	resolved := make(types.ResolvedDeps, len(deps))
	for _, pkgName := range deps.Names() {
		want := deps[pkgName]
		constraint, err := spec.Constraint(want.Interval)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", types.ErrResolutionConflict, pkgName, err)
		}

		tags, err := r.lister.ListVersions(ctx, pkgName)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", types.ErrResolutionConflict, pkgName, err)
		}
		r.logger.Debug("resolving", "package", pkgName, "interval", want.Interval, "tags", len(tags))

		best := highest(tags, constraint)
		if best == nil {
			return nil, fmt.Errorf("%w: no version of %s satisfies %q", types.ErrResolutionConflict, pkgName, want.Interval)
		}

		resolved[pkgName] = types.ResolvedPackage{
			Version:      best.Original(),
			Kind:         want.Kind,
			Dependencies: want.SubDependencies,
		}
	}
	return resolved, nil
}

func highest(tags []string, constraint *semver.Constraints) *semver.Version {
	var best *semver.Version
	for _, t := range tags {
		v, err := semver.NewVersion(t)
		if err != nil || !constraint.Check(v) {
			continue
		}
		if best == nil || v.GreaterThan(best) {
			best = v
		}
	}
	return best
}
