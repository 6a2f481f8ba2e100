// File: pkg/name/name.go

// Package name validates package names and derives the directory names used
// for cache and project-local entries.
package name

import (
	"fmt"
	"strings"

	"cppkg/pkg/types"
)

// projectSeparator replaces "/" in project keys. Validate rejects adjacent
// separators, so "--" never occurs in a valid name and the mapping stays injective.
const projectSeparator = "--"

// IsNameChar reports whether c may appear in a package name.
func IsNameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || isSeparator(c)
}

func isSeparator(c byte) bool {
	return c == '-' || c == '_' || c == '/'
}

// Validate checks name against the package naming rules.
func Validate(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name must not be empty", types.ErrInvalidPackageName)
	}
	for i := 0; i < len(name); i++ {
		if !IsNameChar(name[i]) {
			return fmt.Errorf("%w %q: only lowercase letters, digits, '-', '_' and '/' are allowed", types.ErrInvalidPackageName, name)
		}
	}
	if isSeparator(name[0]) || isSeparator(name[len(name)-1]) {
		return fmt.Errorf("%w %q: must not start or end with '-', '_' or '/'", types.ErrInvalidPackageName, name)
	}
	for i := 1; i < len(name); i++ {
		if isSeparator(name[i-1]) && isSeparator(name[i]) {
			return fmt.Errorf("%w %q: separators must not be adjacent", types.ErrInvalidPackageName, name)
		}
	}
	if strings.Count(name, "/") > 1 {
		return fmt.Errorf("%w %q: '/' may be used only once", types.ErrInvalidPackageName, name)
	}
	return nil
}

// ProjectKey returns the directory name of the package inside the project deps dir.
// It depends on the name only, so a new version replaces the old slot.
func ProjectKey(name string) string {
	return strings.ReplaceAll(name, "/", projectSeparator)
}

// CacheKey returns the directory name of one version of the package in the shared cache.
func CacheKey(name, version string) string {
	return ProjectKey(name) + "@" + version
}
