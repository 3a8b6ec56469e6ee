package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/photosort/pkg/errors"
	"github.com/arthur-debert/photosort/pkg/logging"
)

// Watcher reports changes below a set of source directories, including
// directories created after it started.
type Watcher struct {
	fsw    *fsnotify.Watcher
	logger zerolog.Logger
}

// NewWatcher registers every directory below sources. Failing to register
// any of them is fatal.
func NewWatcher(sources []string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrWatcherCreate, "failed to create filesystem watcher")
	}

	w := &Watcher{fsw: fsw, logger: logging.GetLogger("watch")}
	for _, source := range sources {
		if err := w.addRecursive(source); err != nil {
			_ = fsw.Close()
			return nil, errors.Wrapf(err, errors.ErrWatch, "failed to watch %q", source).
				WithDetail("source", source)
		}
	}
	return w, nil
}

// addRecursive watches root and every directory below it. Symlinks to
// directories are not followed.
func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.fsw.Add(path); err != nil {
			return err
		}
		w.logger.Debug().Str("path", path).Msg("Watching directory")
		return nil
	})
}

// WatchList returns the watched directories.
func (w *Watcher) WatchList() []string {
	return w.fsw.WatchList()
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// Run delivers events to fn until ctx is done or the watcher is closed.
// Errors from the event source are passed to fn as EVENT_RETRIEVE errors
// and do not stop the loop.
func (w *Watcher) Run(ctx context.Context, fn func(Event, error)) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			for _, translated := range w.translate(ev) {
				fn(translated, nil)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			fn(Event{}, errors.Wrap(err, errors.ErrEventRetrieve, "failed to retrieve event"))
		}
	}
}

// translate maps a notification to events. A new directory is watched
// right away and any files already inside it are reported as created,
// since their own notifications may have fired before the watch existed.
func (w *Watcher) translate(ev fsnotify.Event) []Event {
	path := ev.Name

	switch {
	case ev.Has(fsnotify.Create):
		info, err := os.Lstat(path)
		if err != nil || !info.IsDir() {
			return []Event{{Op: OpCreate, Paths: []string{path}}}
		}
		events := []Event{{Op: OpDirCreate, Paths: []string{path}}}
		if err := w.addRecursive(path); err != nil {
			w.logger.Warn().Err(err).Str("path", path).Msg("Failed to watch new directory")
		}
		return append(events, existingFiles(path)...)
	case ev.Has(fsnotify.Write):
		return []Event{{Op: OpWriteClose, Paths: []string{path}}}
	case ev.Has(fsnotify.Remove):
		return []Event{{Op: OpRemove, Paths: []string{path}}}
	case ev.Has(fsnotify.Rename):
		return []Event{{Op: OpRename, Paths: []string{path}}}
	case ev.Has(fsnotify.Chmod):
		return []Event{{Op: OpMetadata, Paths: []string{path}}}
	}
	return nil
}

func existingFiles(root string) []Event {
	var events []Event
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.Type().IsRegular() {
			events = append(events, Event{Op: OpCreate, Paths: []string{path}})
		}
		return nil
	})
	return events
}

// Serve runs w and hands every event to h on the calling goroutine,
// reporting each result to fn. It blocks until ctx is done.
func Serve(ctx context.Context, w *Watcher, h *Handler, fn func(HandlerResult)) error {
	return w.Run(ctx, func(ev Event, err error) {
		var result HandlerResult
		if err != nil {
			result = HandlerResult{Kind: ResultFailed, Err: err}
		} else {
			result = h.Handle(ev)
		}
		if fn != nil {
			fn(result)
		}
	})
}
