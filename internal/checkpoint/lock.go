package checkpoint

import (
	"fmt"
	"os"
	"strconv"
)

// DefaultLockFile guards the state file against concurrent writers.
const DefaultLockFile = "nfsetup.state.lock"

// ErrLocked indicates another invocation holds the state lock.
var ErrLocked = fmt.Errorf("another nfsetup invocation is already running (remove %s if it crashed)", DefaultLockFile)

// Lock acquires an exclusive lock by creating the lock file with O_EXCL.
// The returned release function removes the file.
func Lock(path string) (func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		if os.IsExist(err) {
			return nil, ErrLocked
		}
		return nil, fmt.Errorf("failed to create lock file: %w", err)
	}

	// Record the owning pid for post-mortem debugging of stale locks.
	_, _ = f.WriteString(strconv.Itoa(os.Getpid()) + "\n")
	if err := f.Close(); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("failed to close lock file: %w", err)
	}

	return func() error {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove lock file: %w", err)
		}
		return nil
	}, nil
}
