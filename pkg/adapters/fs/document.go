package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/xeipuuv/gojsonschema"

	"github.com/aretw0/almanac/pkg/core"
)

// Default document locations and wrapper keys.
const (
	DefaultNotesFile = "notes.json"
	DefaultTasksFile = "tasks.json"

	NotesKey = "Notes"
	TasksKey = "tasks"
)

// Config holds the configuration for a file-backed document.
type Config struct {
	Path        string
	ReadOnly    bool
	Logger      *slog.Logger
	Serializers map[string]Serializer // Map extension -> serializer. Defaults to DefaultSerializers.
	EventBuffer int                   // Size of the watch channel buffer. Zero means 16.
	OnWatchErr  func(error)           // Called for runtime watcher errors, which are otherwise only logged.
}

// Document implements core.Repository by reading and rewriting one file
// holding the whole collection under a single wrapper key.
type Document[T core.Entity] struct {
	config     Config
	key        string
	serializer Serializer
	schema     *gojsonschema.Schema
	decode     func(core.Record) (T, error)
	watching   atomic.Bool
}

// NewDocument creates a document adapter. key is the top-level wrapper key,
// schema the JSON Schema every loaded document must satisfy and decode the
// record constructor of T.
func NewDocument[T core.Entity](config Config, key, schema string, decode func(core.Record) (T, error)) (*Document[T], error) {
	if config.Path == "" {
		return nil, fmt.Errorf("document has no path")
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	if config.Serializers == nil {
		config.Serializers = DefaultSerializers()
	}
	if config.EventBuffer <= 0 {
		config.EventBuffer = 16
	}

	compiled, err := compileSchema(schema)
	if err != nil {
		return nil, err
	}

	return &Document[T]{
		config:     config,
		key:        key,
		serializer: serializerFor(config.Path, config.Serializers),
		schema:     compiled,
		decode:     decode,
	}, nil
}

// NewNoteDocument creates the note store document ({"Notes": [...]}).
// An empty path selects notes.json.
func NewNoteDocument(config Config) (*Document[core.Note], error) {
	if config.Path == "" {
		config.Path = DefaultNotesFile
	}
	return NewDocument(config, NotesKey, NoteSchema, core.NoteFromRecord)
}

// NewTaskDocument creates the task store document ({"tasks": [...]}).
// An empty path selects tasks.json.
func NewTaskDocument(config Config) (*Document[core.Task], error) {
	if config.Path == "" {
		config.Path = DefaultTasksFile
	}
	return NewDocument(config, TasksKey, TaskSchema, core.TaskFromRecord)
}

// Path returns the location of the document.
func (d *Document[T]) Path() string {
	return d.config.Path
}

// Load reads the document and rebuilds the collection.
//
// Failures are classified as:
//   - core.ErrDocumentNotFound: the file does not exist.
//   - core.ErrDocumentCorrupted: the content is not valid JSON (or YAML).
//   - core.ErrDocumentStructure: the wrapper key or an entry field is missing or mistyped.
func (d *Document[T]) Load(ctx context.Context) ([]T, error) {
	data, err := os.ReadFile(d.config.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", core.ErrDocumentNotFound, d.config.Path)
		}
		return nil, fmt.Errorf("%w: failed to read %s: %w", core.ErrPersistence, d.config.Path, err)
	}

	canonical, err := d.serializer.Normalize(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", core.ErrDocumentCorrupted, d.config.Path, err)
	}

	violations, err := checkStructure(d.schema, canonical)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", core.ErrDocumentCorrupted, d.config.Path, err)
	}
	if len(violations) > 0 {
		return nil, fmt.Errorf("%w: %s: %s", core.ErrDocumentStructure, d.config.Path, summarize(violations))
	}

	var payload map[string][]core.Record
	decoder := json.NewDecoder(bytes.NewReader(canonical))
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", core.ErrDocumentStructure, d.config.Path, err)
	}

	records := payload[d.key]
	items := make([]T, 0, len(records))
	for i, rec := range records {
		item, err := d.decode(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: entry %d: %v", core.ErrDocumentStructure, d.config.Path, i, err)
		}
		items = append(items, item)
	}

	d.config.Logger.Debug("document loaded", "path", d.config.Path, "entries", len(items))
	return items, nil
}

// Save overwrites the document with items through writeDocument.
func (d *Document[T]) Save(ctx context.Context, items []T) error {
	if d.config.ReadOnly {
		return core.ErrReadOnly
	}
	if items == nil {
		items = []T{}
	}

	data, err := d.serializer.Serialize(map[string][]T{d.key: items})
	if err != nil {
		return fmt.Errorf("%w: failed to serialize %s: %v", core.ErrPersistence, d.config.Path, err)
	}

	if err := writeDocument(d.config.Path, data); err != nil {
		return err
	}

	d.config.Logger.Debug("document saved", "path", d.config.Path, "entries", len(items))
	return nil
}

var _ core.Repository[core.Note] = (*Document[core.Note])(nil)
var _ core.Watchable = (*Document[core.Task])(nil)
