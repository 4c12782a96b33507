package core

import (
	"context"
	"log/slog"
)

// NoteManager handles the business logic for the note store.
type NoteManager struct {
	*Collection[Note]
}

// NewNoteManager creates an empty note store backed by repo.
func NewNoteManager(repo Repository[Note], logger *slog.Logger) *NoteManager {
	return &NoteManager{Collection: NewCollection("note", repo, logger)}
}

// AddNote builds, validates and stores a note with the given attributes.
func (m *NoteManager) AddNote(ctx context.Context, id int, category, date string, opts ...NoteOption) error {
	return m.Add(ctx, NewNote(id, category, date, opts...))
}

// Search returns the notes whose field equals value exactly.
func (m *NoteManager) Search(field, value string) ([]Note, error) {
	return m.SearchByAttribute(NoteFields, field, value)
}

// DisplayAll returns every note in insertion order.
func (m *NoteManager) DisplayAll() []Note {
	return m.List()
}
