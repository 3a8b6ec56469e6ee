package watch

import (
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/arthur-debert/photosort/pkg/errors"
)

// Lock is held by a running watcher so two watchers never sort into the
// same tree concurrently.
type Lock struct {
	fl *flock.Flock
}

// AcquireLock takes the lock file at path without blocking.
func AcquireLock(path string) (*Lock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrWatch, "failed to create lock directory for %q", path).
			WithDetail("lock", path)
	}

	fl := flock.New(path)
	locked, err := fl.TryLock()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrWatch, "failed to lock %q", path).
			WithDetail("lock", path)
	}
	if !locked {
		_ = fl.Close()
		return nil, errors.Newf(errors.ErrWatchLocked, "another watcher holds %q", path).
			WithDetail("lock", path)
	}
	return &Lock{fl: fl}, nil
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	return l.fl.Path()
}

// Release unlocks and closes the lock file.
func (l *Lock) Release() error {
	return l.fl.Unlock()
}
