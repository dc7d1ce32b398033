package main

import (
	"github.com/jslint-dev/jslint/internal/filelock"
)

// writeFixedLocked writes content to path under an advisory OS file lock
// when the platform supports it (spec.md §5); a failure to obtain the
// lock is not an error, only a degraded (unlocked) write.
func writeFixedLocked(path, content string) error {
	lock, err := filelock.Acquire(path)
	if err != nil {
		return err
	}
	defer lock.Unlock()

	f := lock.File()
	if err := f.Truncate(0); err != nil {
		return err
	}
	if _, err := f.WriteAt([]byte(content), 0); err != nil {
		return err
	}
	return nil
}
