package resolver

import (
	"github.com/charmbracelet/log"

	"cppkg/pkg/types"
)

// LoadLockfile returns the stored lockfile when it can stand in for a resolve:
// no packages were named on the command line, a lockfile exists, and it was
// written against the current manifest timestamp. Otherwise it returns nil.
// An unreadable lockfile is logged and treated as absent.
func LoadLockfile(store LockfileStore, opts Options, timestamp string, logger *log.Logger) *types.Lockfile {
	if len(opts.Packages) > 0 || timestamp == "" {
		return nil
	}
	lock, err := store.Load()
	if err != nil {
		logger.Warn("ignoring unreadable lock file", "err", err)
		return nil
	}
	if lock == nil || lock.Timestamp != timestamp {
		logger.Debug("lock file is missing or stale")
		return nil
	}
	return lock
}
