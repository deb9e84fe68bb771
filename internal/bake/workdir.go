package bake

import (
	"fmt"
	"os"
	"sync"
)

// The process working directory is global state. Entries are serialized so
// two goroutines can never interleave chdir/restore pairs; the helper must
// also never be entered re-entrantly from inside fn.
var workdirMu sync.Mutex

// InsideDir changes the working directory to dir, runs fn, and restores the
// previous working directory on every exit path, including an error from fn.
func InsideDir(dir string, fn func() error) (err error) {
	workdirMu.Lock()
	defer workdirMu.Unlock()

	prev, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("reading working directory: %w", err)
	}

	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("entering %s: %w", dir, err)
	}

	defer func() {
		if restoreErr := os.Chdir(prev); restoreErr != nil && err == nil {
			err = fmt.Errorf("restoring working directory %s: %w", prev, restoreErr)
		}
	}()

	return fn()
}
