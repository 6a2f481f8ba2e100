// File: pkg/types/types.go
package types

import (
	"fmt"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// PackageConfig matches the structure of cppkg.toml
type PackageConfig struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	// Dependencies is nil when the manifest has no [dependencies] table.
	Dependencies map[string]string `toml:"dependencies"`
	Scripts      map[string]string `toml:"scripts,omitempty"` // For post-install hooks
}

// PackageKind is the build flavour of a package.
type PackageKind int

const (
	HeaderOnlyLib PackageKind = iota
	BuildReqLib
	Application
)

var kindNames = map[PackageKind]string{
	HeaderOnlyLib: "header-only-lib",
	BuildReqLib:   "build-required-lib",
	Application:   "application",
}

func (k PackageKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("PackageKind(%d)", int(k))
}

// ParsePackageKind is the inverse of PackageKind.String.
func ParsePackageKind(s string) (PackageKind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return HeaderOnlyLib, fmt.Errorf("unknown package type %q", s)
}

// MarshalYAML implements yaml.Marshaler.
func (k PackageKind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (k *PackageKind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParsePackageKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// PackageSpec is a requested package: a name and the version interval it must satisfy.
type PackageSpec struct {
	Name            string
	Interval        string
	Kind            PackageKind
	SubDependencies map[string]string
}

// DependencySet maps package names to their requested specs.
// Add overwrites an existing entry with the same name.
type DependencySet map[string]PackageSpec

// Add inserts spec, replacing any entry already present under the same name.
func (d DependencySet) Add(spec PackageSpec) {
	d[spec.Name] = spec
}

// Names returns the package names in sorted order.
func (d DependencySet) Names() []string {
	return slices.Sorted(maps.Keys(d))
}

// ResolvedPackage is a package pinned to a concrete version.
type ResolvedPackage struct {
	Version      string            `yaml:"version"`
	Kind         PackageKind       `yaml:"package_type"`
	Dependencies map[string]string `yaml:"dependencies,omitempty"`
}

// ResolvedDeps is the conflict-free set produced by resolution, keyed by package name.
type ResolvedDeps map[string]ResolvedPackage

// Names returns the package names in sorted order.
func (r ResolvedDeps) Names() []string {
	return slices.Sorted(maps.Keys(r))
}

// Lockfile matches the structure of cppkg.lock
type Lockfile struct {
	Timestamp    string       `yaml:"timestamp"`
	Dependencies ResolvedDeps `yaml:"dependencies"`
}
