// Package filelock provides best-effort advisory file locking around
// autofix write-backs (spec.md §5 "Autofix writes to disk acquire an OS
// file lock when available"). A lock failure degrades silently to an
// unlocked write — it is never treated as a hard error, since advisory
// locks are cooperative and many environments (containers, some network
// filesystems) don't honor them at all.
package filelock

import (
	"os"

	"golang.org/x/sys/unix"
)

// Lock holds an open file descriptor with an advisory exclusive lock
// acquired via flock(2). Call Unlock when done.
type Lock struct {
	f      *os.File
	locked bool
}

// Acquire opens path for read-write and attempts a non-blocking exclusive
// flock. If the flock call fails (unsupported filesystem, contended lock,
// anything else), Acquire still returns a usable Lock with Locked()
// false — the caller proceeds with an unlocked write rather than failing
// the whole autofix run.
func Acquire(path string) (*Lock, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	l := &Lock{f: f}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err == nil {
		l.locked = true
	}
	return l, nil
}

// Locked reports whether the advisory lock was actually obtained.
func (l *Lock) Locked() bool { return l.locked }

// File returns the underlying open file, for writing the fixed content
// through the same descriptor the lock was taken on.
func (l *Lock) File() *os.File { return l.f }

// Unlock releases the advisory lock (if held) and closes the file.
func (l *Lock) Unlock() error {
	if l.locked {
		_ = unix.Flock(int(l.f.Fd()), unix.LOCK_UN)
	}
	return l.f.Close()
}
