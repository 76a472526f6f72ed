package database

import (
	"errors"
	"fmt"

	"github.com/gofrs/flock"
)

// ErrLocked is returned by LockWriter when another process or request
// already holds the writer lock.
var ErrLocked = errors.New("writer lock held")

// LockPath is the advisory lock file guarding maintenance writes to the
// database at c.Path.
func (c Config) LockPath() string {
	return c.Path + ".lock"
}

// LockWriter takes the non-blocking writer lock for cfg. showctl and the
// admin routes share it, so a reseed or rerank never interleaves with
// another one. The returned func releases the lock.
func LockWriter(cfg Config) (func(), error) {
	lock := flock.New(cfg.LockPath())
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", lock.Path(), err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, lock.Path())
	}
	return func() { _ = lock.Unlock() }, nil
}
