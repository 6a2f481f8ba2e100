// File: pkg/spec/spec.go

// Package spec parses command-line package arguments and converts between
// concrete versions and version intervals.
package spec

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"cppkg/pkg/name"
	"cppkg/pkg/types"
)

// Latest is the interval of a package requested without one.
const Latest = "latest"

// Parse turns a `name` or `name=interval` argument into a PackageSpec.
// The interval is kept verbatim; it is checked when the package is resolved.
func Parse(token string) (types.PackageSpec, error) {
	if token == "" {
		return types.PackageSpec{}, fmt.Errorf("%w: empty package argument", types.ErrInvalidPackageName)
	}

	pkgName, interval, hasInterval := strings.Cut(token, "=")
	if !isBareName(pkgName) {
		return types.PackageSpec{}, fmt.Errorf("%w: %q (expected 'name' or 'name=interval')", types.ErrParse, token)
	}
	if err := name.Validate(pkgName); err != nil {
		return types.PackageSpec{}, err
	}
	if !hasInterval {
		interval = Latest
	} else if strings.TrimSpace(interval) == "" {
		return types.PackageSpec{}, fmt.Errorf("%w: %q has an empty version interval", types.ErrParse, token)
	}

	return types.PackageSpec{
		Name:     pkgName,
		Interval: interval,
		Kind:     types.HeaderOnlyLib,
	}, nil
}

func isBareName(s string) bool {
	for i := 0; i < len(s); i++ {
		if !name.IsNameChar(s[i]) {
			return false
		}
	}
	return true
}

// ToInterval freezes a concrete version into ">=V and <(major+1).0.0".
func ToInterval(version string) (string, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return "", fmt.Errorf("version %q is not a valid semver: %w", version, err)
	}
	upper := v.IncMajor()
	return fmt.Sprintf(">=%s and <%s", version, upper.String()), nil
}

// Constraint parses an interval expression. Conjunctions may be written with
// "and" (">=1.0.0 and <2.0.0") as well as the comma form. "latest" accepts any
// stable release.
func Constraint(interval string) (*semver.Constraints, error) {
	expr := strings.TrimSpace(interval)
	if expr == Latest {
		expr = "*"
	}
	expr = strings.ReplaceAll(expr, " and ", ", ")
	c, err := semver.NewConstraint(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid version interval %q: %w", interval, err)
	}
	return c, nil
}
