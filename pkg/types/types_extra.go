// File: pkg/types/types_extra.go
package types

// InstallState classifies a package against the project and cache directories.
// It is recomputed on every run and never persisted.
type InstallState int

const (
	AlreadyInstalled InstallState = iota
	Cached
	NeedsFetch
)

func (s InstallState) String() string {
	switch s {
	case AlreadyInstalled:
		return "already-installed"
	case Cached:
		return "cached"
	case NeedsFetch:
		return "needs-fetch"
	default:
		return "unknown"
	}
}
