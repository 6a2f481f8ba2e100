// Package dependency builds the set of packages an install works on.
package dependency

import (
	"fmt"

	"cppkg/pkg/config"
	"cppkg/pkg/name"
	"cppkg/pkg/spec"
	"cppkg/pkg/types"
)

// Collect merges command-line packages with the manifest's dependencies.
// Every token is parsed before anything else happens, so a bad argument fails
// the install up front. Manifest entries are merged only when useManifest is
// set, and a package named on the command line replaces the manifest entry of
// the same name.
func Collect(packages []string, manifest *types.PackageConfig, useManifest bool) (types.DependencySet, error) {
	requested := make([]types.PackageSpec, 0, len(packages))
	for _, token := range packages {
		s, err := spec.Parse(token)
		if err != nil {
			return nil, err
		}
		requested = append(requested, s)
	}

	deps := make(types.DependencySet)
	if useManifest {
		if manifest == nil || manifest.Dependencies == nil {
			if len(requested) == 0 {
				return nil, fmt.Errorf("%w in %s: add a [dependencies] table or run `cppkg install <package>`",
					types.ErrMissingDependencies, config.ManifestFile)
			}
		} else {
			for depName, interval := range manifest.Dependencies {
				if err := name.Validate(depName); err != nil {
					return nil, fmt.Errorf("%s: %w", config.ManifestFile, err)
				}
				deps.Add(types.PackageSpec{Name: depName, Interval: interval, Kind: types.HeaderOnlyLib})
			}
		}
	}

	for _, s := range requested {
		deps.Add(s)
	}
	return deps, nil
}
