// File: pkg/types/errors.go
package types

import "go.trai.ch/zerr"

var (
	// ErrInvalidPackageName is returned when a package name violates the naming rules.
	ErrInvalidPackageName = zerr.New("invalid package name")

	// ErrParse is returned for a command-line token that is neither `name` nor `name=interval`.
	ErrParse = zerr.New("Invalid arguments")

	// ErrMissingDependencies is returned when no packages were given and the manifest has no dependencies key.
	ErrMissingDependencies = zerr.New("required key `dependencies` does not exist")

	// ErrResolutionConflict is returned when no version satisfies a requested interval.
	ErrResolutionConflict = zerr.New("resolution conflict")

	// ErrCloneFailed marks a package whose remote clone failed.
	ErrCloneFailed = zerr.New("clone failed")

	// ErrCopyFailed marks a package that could not be copied into the project.
	ErrCopyFailed = zerr.New("copy failed")

	// ErrFetchFailed is returned in strict mode when at least one package failed to install.
	ErrFetchFailed = zerr.New("one or more packages failed to install")
)
