package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchFunc receives a reloaded document, or the error that prevented
// loading it.
type WatchFunc func(doc *Document, err error)

// Watch reloads the document at path whenever it is written or created,
// and passes the result to fn. It watches the parent directory so editors
// that replace the file are followed.
//
// Watch blocks until ctx is done and then returns nil. fn runs on the
// watching goroutine; callers that drive an Engine should hand the
// document to their frame loop rather than apply it from fn.
func Watch(ctx context.Context, path string, fn WatchFunc) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("config: watch %q: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: watch: %w", err)
	}
	defer func() {
		_ = w.Close()
	}()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("config: watch %q: %w", path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			fn(Load(abs))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fn(nil, fmt.Errorf("config: watch: %w", err))
		}
	}
}
