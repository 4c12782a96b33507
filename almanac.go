package almanac

import (
	"context"
	_ "embed"
	"log/slog"

	"github.com/aretw0/almanac/internal/platform"
	"github.com/aretw0/almanac/pkg/adapters/fs"
	"github.com/aretw0/almanac/pkg/core"
)

// Version exposes the version of the library.
//
//go:embed VERSION
var Version string

// --- Types ---

// NoteManager is a public alias for the note store.
type NoteManager = core.NoteManager

// TaskManager is a public alias for the task store.
type TaskManager = core.TaskManager

// --- Configuration ---

// Option defines a functional option for configuring a store.
type Option = platform.Option

// WithLogger sets the logger for the managers and documents.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithReadOnly makes every mutation fail with core.ErrReadOnly.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithMustExist makes opening fail when the document does not exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithSerializer registers a document serializer for a file extension.
func WithSerializer(ext string, s fs.Serializer) Option {
	return platform.WithSerializer(ext, s)
}

// WithEventBuffer sets the size of the watch channel buffer.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithWatcherErrorHandler registers a callback for runtime watcher failures.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// WithNoteRepository injects a custom note storage adapter.
func WithNoteRepository(repo core.Repository[core.Note]) Option {
	return platform.WithNoteRepository(repo)
}

// WithTaskRepository injects a custom task storage adapter.
func WithTaskRepository(repo core.Repository[core.Task]) Option {
	return platform.WithTaskRepository(repo)
}

// --- Factory ---

// OpenNotes opens the note store at path (notes.json when empty).
func OpenNotes(ctx context.Context, path string, opts ...Option) (*NoteManager, error) {
	return platform.OpenNotes(ctx, path, opts...)
}

// OpenTasks opens the task store at path (tasks.json when empty).
func OpenTasks(ctx context.Context, path string, opts ...Option) (*TaskManager, error) {
	return platform.OpenTasks(ctx, path, opts...)
}
