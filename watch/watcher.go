package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/randalmurphal/contextkit/session"
)

// ErrFileTooLarge indicates a file was rejected by the session's per-file
// token cap.
var ErrFileTooLarge = errors.New("file exceeds per-file token cap")

// DefaultPollInterval is how often the polling fallback checks for changes
// when fsnotify is unavailable.
const DefaultPollInterval = 500 * time.Millisecond

// Watcher keeps a session's pinned files in sync with their on-disk
// contents: writes re-pin (refreshing the file's recency), removals unpin.
//
// This is the "background file-watcher" collaborator the session's locking
// exists for — it mutates the session from its own goroutine while the
// interactive loop builds payloads.
type Watcher struct {
	sess *session.Session

	// OnError, if set, receives failures from re-reading or re-pinning a
	// changed file after the initial pin. Errors are otherwise dropped,
	// and watching continues either way.
	OnError func(path string, err error)

	// PollInterval overrides DefaultPollInterval for the polling fallback.
	PollInterval time.Duration
}

// New creates a watcher feeding the given session.
func New(sess *session.Session) *Watcher {
	return &Watcher{sess: sess}
}

// Pin reads a file from disk and pins its content in the session.
// It fails with ErrFileTooLarge when the session rejects the content.
func (w *Watcher) Pin(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if !w.sess.AddFile(path, string(data)) {
		return fmt.Errorf("%s: %w", path, ErrFileTooLarge)
	}
	return nil
}

// Watch pins each path, then follows filesystem changes until the context
// is cancelled. Initial pins fail loudly; later failures are reported via
// OnError and watching continues. Uses fsnotify with a polling fallback.
//
// Watch blocks; run it on its own goroutine.
func (w *Watcher) Watch(ctx context.Context, paths ...string) error {
	tracked := make(map[string]string, len(paths)) // cleaned abs path -> path as given
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", p, err)
		}
		if err := w.Pin(p); err != nil {
			return err
		}
		tracked[filepath.Clean(abs)] = p
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		w.poll(ctx, tracked)
		return nil
	}
	defer fsw.Close()

	// Watch the parent directories (more reliable than watching files
	// directly, and survives editors that replace files on save).
	added := make(map[string]bool)
	for abs := range tracked {
		dir := filepath.Dir(abs)
		if added[dir] {
			continue
		}
		if err := fsw.Add(dir); err != nil {
			w.poll(ctx, tracked)
			return nil
		}
		added[dir] = true
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			path, ok := tracked[filepath.Clean(abs)]
			if !ok {
				continue
			}
			switch {
			case event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename):
				w.sess.RemoveFile(path)
			case event.Has(fsnotify.Write) || event.Has(fsnotify.Create):
				if err := w.Pin(path); err != nil {
					w.reportError(path, err)
				}
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			// Usually recoverable; report and keep watching.
			w.reportError("", err)
		}
	}
}

// poll is the fallback when fsnotify is unavailable: re-stat tracked files
// on an interval, re-pinning on modification and unpinning on removal.
func (w *Watcher) poll(ctx context.Context, tracked map[string]string) {
	interval := w.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	modTimes := make(map[string]time.Time, len(tracked))
	for abs := range tracked {
		if info, err := os.Stat(abs); err == nil {
			modTimes[abs] = info.ModTime()
		}
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			for abs, path := range tracked {
				info, err := os.Stat(abs)
				if err != nil {
					if _, had := modTimes[abs]; had {
						delete(modTimes, abs)
						w.sess.RemoveFile(path)
					}
					continue
				}
				if info.ModTime().Equal(modTimes[abs]) {
					continue
				}
				modTimes[abs] = info.ModTime()
				if err := w.Pin(path); err != nil {
					w.reportError(path, err)
				}
			}
		}
	}
}

func (w *Watcher) reportError(path string, err error) {
	if w.OnError != nil {
		w.OnError(path, err)
	}
}
