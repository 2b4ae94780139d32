// Package watch notices external edits to the managed config files so the
// application can re-parse them. Events are debounced: editors often emit
// several writes per save.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/tilecfg/tilecfg/internal/logging"
)

// Watcher watches a set of files and invokes a callback per settled change.
type Watcher struct {
	debounce time.Duration
	paths    map[string]bool
	onChange func(path string)
}

// New creates a watcher over the given files. onChange runs on the watcher
// goroutine after a path has been quiet for the debounce window.
func New(debounce time.Duration, onChange func(path string), paths ...string) *Watcher {
	set := make(map[string]bool, len(paths))
	for _, p := range paths {
		set[filepath.Clean(p)] = true
	}
	return &Watcher{debounce: debounce, paths: set, onChange: onChange}
}

// Run watches until ctx is cancelled. The parent directories are watched
// rather than the files themselves so that atomic-rename saves keep working.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	dirs := make(map[string]bool)
	for p := range w.paths {
		dirs[filepath.Dir(p)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			return err
		}
	}

	log := logging.FromContext(ctx)
	pending := make(map[string]*time.Timer)
	fired := make(chan string)
	defer func() {
		for _, t := range pending {
			t.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			path := filepath.Clean(event.Name)
			if !w.paths[path] || !event.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			log.Debug().Str("op", event.Op.String()).Str("file", path).Msg("fsnotify change detected")

			if timer, ok := pending[path]; ok {
				timer.Stop()
			}
			p := path
			pending[p] = time.AfterFunc(w.debounce, func() {
				select {
				case fired <- p:
				case <-ctx.Done():
				}
			})

		case path := <-fired:
			delete(pending, path)
			w.onChange(path)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("watcher error")
		}
	}
}
