package core

import (
	"fmt"
	"sort"
	"strconv"
)

// DefaultTopic is used when a note is created without a topic.
const DefaultTopic = "Nameless."

// Note is a free-form dated entry filed under a category.
type Note struct {
	ID       int    `json:"id" yaml:"id"`
	Category string `json:"category" yaml:"category"`
	Date     string `json:"date" yaml:"date"`
	Topic    string `json:"topic" yaml:"topic"`
	Text     string `json:"note" yaml:"note"`
}

// NoteOption sets an optional note attribute.
type NoteOption func(*Note)

// WithTopic overrides the default topic.
func WithTopic(topic string) NoteOption {
	return func(n *Note) {
		n.Topic = topic
	}
}

// WithNoteText sets the free text body of the note.
func WithNoteText(text string) NoteOption {
	return func(n *Note) {
		n.Text = text
	}
}

// NewNote builds a note with defaults applied. It does not validate.
func NewNote(id int, category, date string, opts ...NoteOption) Note {
	n := Note{
		ID:       id,
		Category: category,
		Date:     date,
		Topic:    DefaultTopic,
	}
	for _, opt := range opts {
		opt(&n)
	}
	return n
}

func (n Note) EntityID() int { return n.ID }

// Validate runs the id, category and date checks and reports every failure.
func (n Note) Validate() error {
	return runValidators("note",
		func() string { return validateID(n.ID) },
		func() string { return validateNonEmpty("Category", n.Category) },
		func() string { return validateDate(n.Date) },
	)
}

// Record returns the flat form used by the document format.
func (n Note) Record() Record {
	return Record{
		"id":       n.ID,
		"category": n.Category,
		"date":     n.Date,
		"topic":    n.Topic,
		"note":     n.Text,
	}
}

// NoteFromRecord rebuilds a note. Every key is required.
func NoteFromRecord(r Record) (Note, error) {
	var (
		n   Note
		err error
	)
	if n.ID, err = intField(r, "id"); err != nil {
		return Note{}, err
	}
	if n.Category, err = stringField(r, "category"); err != nil {
		return Note{}, err
	}
	if n.Date, err = stringField(r, "date"); err != nil {
		return Note{}, err
	}
	if n.Topic, err = stringField(r, "topic"); err != nil {
		return Note{}, err
	}
	if n.Text, err = stringField(r, "note"); err != nil {
		return Note{}, err
	}
	return n, nil
}

func (n Note) String() string {
	return fmt.Sprintf("ID: %d, Category: %s, Date: %s, Topic: %s, Note: %s",
		n.ID, n.Category, n.Date, n.Topic, n.Text)
}

// NoteFields is the allow-list of searchable note fields.
var NoteFields = map[string]Field[Note]{
	"id":       func(n Note) string { return strconv.Itoa(n.ID) },
	"category": func(n Note) string { return n.Category },
	"date":     func(n Note) string { return n.Date },
	"topic":    func(n Note) string { return n.Topic },
	"note":     func(n Note) string { return n.Text },
}

// FieldNames returns the sorted keys of an allow-list.
func FieldNames[T any](fields map[string]Field[T]) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
