package platform

import (
	"log/slog"

	"github.com/aretw0/almanac/pkg/adapters/fs"
	"github.com/aretw0/almanac/pkg/core"
)

// options holds the internal configuration for opening a store.
type options struct {
	logger      *slog.Logger
	readOnly    bool
	mustExist   bool
	eventBuffer int
	watchErr    func(error)
	serializers map[string]fs.Serializer
	noteRepo    core.Repository[core.Note]
	taskRepo    core.Repository[core.Task]
}

// Option defines a functional option for configuring a store.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		serializers: fs.DefaultSerializers(),
	}
}

// WithLogger sets the logger used by the managers and documents.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithReadOnly enables read-only mode: every mutation fails with
// core.ErrReadOnly and the document is never written.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithMustExist makes opening fail when the document does not exist yet.
// By default a missing document opens as an empty store.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithSerializer registers a serializer for a file extension (e.g. ".yaml").
func WithSerializer(ext string, s fs.Serializer) Option {
	return func(o *options) {
		o.serializers[ext] = s
	}
}

// WithEventBuffer sets the size of the watch channel buffer.
// Zero means default (16).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.eventBuffer = size
	}
}

// WithWatcherErrorHandler registers a callback for runtime watcher failures
// (e.g. permission denied) which are otherwise only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.watchErr = fn
	}
}

// WithNoteRepository injects a custom note storage adapter (e.g. a mock).
// If provided, the filesystem document is skipped.
func WithNoteRepository(repo core.Repository[core.Note]) Option {
	return func(o *options) {
		o.noteRepo = repo
	}
}

// WithTaskRepository injects a custom task storage adapter.
func WithTaskRepository(repo core.Repository[core.Task]) Option {
	return func(o *options) {
		o.taskRepo = repo
	}
}

func (o *options) fsConfig(path string) fs.Config {
	return fs.Config{
		Path:        path,
		ReadOnly:    o.readOnly,
		Logger:      o.logger,
		Serializers: o.serializers,
		EventBuffer: o.eventBuffer,
		OnWatchErr:  o.watchErr,
	}
}
