package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/almanac/pkg/core"
)

// Watch reports changes of the document file until ctx is cancelled.
// The parent directory is watched rather than the file itself, because an
// atomic save replaces the file and a file watch would be lost on rename.
func (d *Document[T]) Watch(ctx context.Context) (<-chan core.Event, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	dir := filepath.Dir(d.config.Path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	pattern := doublestar.EscapeMeta(filepath.Base(d.config.Path))
	events := make(chan core.Event, d.config.EventBuffer)
	d.watching.Store(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer watcher.Close()
		defer d.watching.Store(false)

		for {
			select {
			case <-ctx.Done():
				return nil

			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				e, ok := d.translate(event, pattern)
				if !ok {
					continue
				}
				select {
				case events <- e:
				case <-ctx.Done():
					return nil
				}

			case wErr, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				d.handleWatchError(wErr)
			}
		}
	}, lifecycle.WithErrorHandler(d.handleWatchError))

	return events, nil
}

// translate maps an fsnotify event on the document to a core.Event.
// Events for other files (including the temporary files of atomic writes)
// are dropped.
func (d *Document[T]) translate(event fsnotify.Event, pattern string) (core.Event, bool) {
	match, err := doublestar.Match(pattern, filepath.Base(event.Name))
	if err != nil || !match {
		return core.Event{}, false
	}

	var eType core.EventType
	switch {
	case event.Has(fsnotify.Create):
		eType = core.EventCreate
	case event.Has(fsnotify.Write):
		eType = core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		eType = core.EventDelete
	default:
		return core.Event{}, false
	}

	d.config.Logger.Debug("document changed", "path", event.Name, "type", eType)
	return core.Event{
		Type:      eType,
		Path:      d.config.Path,
		Timestamp: time.Now().Unix(),
	}, true
}

func (d *Document[T]) handleWatchError(err error) {
	d.config.Logger.Error("watch error", "path", d.config.Path, "error", err)
	if d.config.OnWatchErr != nil {
		d.config.OnWatchErr(err)
	}
}
