package platform

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aretw0/almanac/pkg/adapters/fs"
	"github.com/aretw0/almanac/pkg/core"
)

// OpenNotes creates a note manager backed by the document at path
// (notes.json when empty) and loads its current content.
//
//	notes, err := platform.OpenNotes(ctx, "./notes.json", platform.WithReadOnly(true))
func OpenNotes(ctx context.Context, path string, opts ...Option) (*core.NoteManager, error) {
	o := parse(opts)

	repo := o.noteRepo
	if repo == nil {
		doc, err := fs.NewNoteDocument(o.fsConfig(ResolvePath(path, fs.DefaultNotesFile)))
		if err != nil {
			return nil, err
		}
		repo = doc
	}

	m := core.NewNoteManager(repo, o.logger)
	if err := load(ctx, m.Load, o); err != nil {
		return nil, err
	}
	return m, nil
}

// OpenTasks creates a task manager backed by the document at path
// (tasks.json when empty) and loads its current content.
func OpenTasks(ctx context.Context, path string, opts ...Option) (*core.TaskManager, error) {
	o := parse(opts)

	repo := o.taskRepo
	if repo == nil {
		doc, err := fs.NewTaskDocument(o.fsConfig(ResolvePath(path, fs.DefaultTasksFile)))
		if err != nil {
			return nil, err
		}
		repo = doc
	}

	m := core.NewTaskManager(repo, o.logger)
	if err := load(ctx, m.Load, o); err != nil {
		return nil, err
	}
	return m, nil
}

func parse(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// load treats a missing document as an empty store unless mustExist is set.
func load(ctx context.Context, fn func(context.Context) error, o *options) error {
	err := fn(ctx)
	if errors.Is(err, core.ErrDocumentNotFound) && !o.mustExist {
		o.logger.Debug("no saved document, starting empty", "error", err)
		return nil
	}
	return err
}
