package resolver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// PassLock serializes mutating resolution passes across carbon processes.
// Two instances deleting and relocating files in the same tree at once
// would race each other's conflict handling, so the CLI takes this lock
// before any pass whose action mutates the filesystem.
type PassLock struct {
	path string
	lock *flock.Flock
}

// NewPassLock prepares a lock backed by the given file path.
func NewPassLock(path string) *PassLock {
	return &PassLock{path: path, lock: flock.New(path)}
}

// Acquire takes the lock without blocking. It fails when another carbon
// instance already holds it.
func (l *PassLock) Acquire() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("ensure lock directory: %w", err)
	}
	ok, err := l.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another carbon instance is resolving duplicates; try again when it finishes")
	}
	return nil
}

// Release drops the lock.
func (l *PassLock) Release() error {
	return l.lock.Unlock()
}

// Path returns the lock file location.
func (l *PassLock) Path() string {
	return l.path
}
