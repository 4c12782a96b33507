package core_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/almanac/pkg/core"
)

func seedNotes(t *testing.T, m *core.NoteManager) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, m.AddNote(ctx, 1, "Work", "2024-01-01", core.WithTopic("Standup")))
	require.NoError(t, m.AddNote(ctx, 2, "Home", "2024-01-02"))
	require.NoError(t, m.AddNote(ctx, 3, "Work", "2024-01-03", core.WithNoteText("retro")))
}

func ids[T core.Entity](items []T) []int {
	out := make([]int, 0, len(items))
	for _, e := range items {
		out = append(out, e.EntityID())
	}
	return out
}

func TestNoteManager_Add(t *testing.T) {
	ctx := context.Background()
	repo := NewMockRepository[core.Note]()
	m := core.NewNoteManager(repo, nil)

	require.NoError(t, m.AddNote(ctx, 1, "Work", "2024-01-01"))
	assert.Equal(t, 1, repo.saves, "add persists immediately")
	assert.Equal(t, m.List(), repo.saved)

	t.Run("Duplicate ID", func(t *testing.T) {
		err := m.AddNote(ctx, 1, "Home", "2024-02-02")
		assert.ErrorIs(t, err, core.ErrDuplicateID)
		assert.Equal(t, 1, m.Len())
		assert.Equal(t, 1, repo.saves)
	})

	t.Run("Duplicate Checked Before Validation", func(t *testing.T) {
		err := m.AddNote(ctx, 1, "", "bad")
		assert.ErrorIs(t, err, core.ErrDuplicateID)
		assert.NotErrorIs(t, err, core.ErrValidation)
	})

	t.Run("Invalid Entry Not Stored", func(t *testing.T) {
		err := m.AddNote(ctx, 2, " ", "2024-99-01")
		var verr *core.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Reasons, 2)
		assert.Equal(t, 1, m.Len())
		assert.Equal(t, 1, repo.saves)
	})

	t.Run("Save Failure Keeps Sequence", func(t *testing.T) {
		repo.saveErr = core.ErrReadOnly
		defer func() { repo.saveErr = nil }()

		err := m.AddNote(ctx, 5, "Work", "2024-01-05")
		assert.ErrorIs(t, err, core.ErrReadOnly)
		assert.Equal(t, []int{1}, ids(m.List()))
	})

	t.Run("Negative ID", func(t *testing.T) {
		require.NoError(t, m.AddNote(ctx, -1, "Work", "2024-01-02"))
		assert.Equal(t, []int{1, -1}, ids(m.List()))
		assert.Equal(t, 2, repo.saves)
	})
}

func TestNoteManager_DeleteByID(t *testing.T) {
	ctx := context.Background()
	repo := NewMockRepository[core.Note]()
	m := core.NewNoteManager(repo, nil)
	seedNotes(t, m)

	require.NoError(t, m.DeleteByID(ctx, 2))
	assert.Equal(t, []int{1, 3}, ids(m.List()))
	assert.Equal(t, []int{1, 3}, ids(repo.saved))

	err := m.DeleteByID(ctx, 42)
	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.Equal(t, []int{1, 3}, ids(m.List()))
}

func TestNoteManager_Search(t *testing.T) {
	m := core.NewNoteManager(NewMockRepository[core.Note](), nil)
	seedNotes(t, m)

	t.Run("Exact Match In Insertion Order", func(t *testing.T) {
		got, err := m.Search("category", "Work")
		require.NoError(t, err)
		assert.Equal(t, []int{1, 3}, ids(got))
		for _, n := range got {
			assert.Equal(t, "Work", n.Category)
		}
	})

	t.Run("ID Field", func(t *testing.T) {
		got, err := m.Search("id", "2")
		require.NoError(t, err)
		assert.Equal(t, []int{2}, ids(got))
	})

	t.Run("Default Topic", func(t *testing.T) {
		got, err := m.Search("topic", core.DefaultTopic)
		require.NoError(t, err)
		assert.Equal(t, []int{2, 3}, ids(got))
	})

	t.Run("No Partial Match", func(t *testing.T) {
		_, err := m.Search("category", "Wor")
		assert.ErrorIs(t, err, core.ErrNotFound)
	})

	t.Run("Unknown Field", func(t *testing.T) {
		_, err := m.Search("Category", "Work")
		assert.ErrorIs(t, err, core.ErrUnknownField)
		assert.False(t, errors.Is(err, core.ErrNotFound))
	})
}

func TestNoteManager_DisplayAll(t *testing.T) {
	m := core.NewNoteManager(NewMockRepository[core.Note](), nil)
	assert.Empty(t, m.DisplayAll())
	assert.NotNil(t, m.DisplayAll())

	seedNotes(t, m)
	all := m.DisplayAll()
	assert.Equal(t, []int{1, 2, 3}, ids(all))

	// Callers get a copy.
	all[0].Category = "Mutated"
	got, err := m.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Work", got.Category)
}

func TestNoteManager_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("Persistence Fidelity", func(t *testing.T) {
		repo := NewMockRepository[core.Note]()
		m := core.NewNoteManager(repo, nil)
		seedNotes(t, m)

		fresh := core.NewNoteManager(repo, nil)
		require.NoError(t, fresh.Load(ctx))
		assert.Equal(t, m.List(), fresh.List())
	})

	t.Run("Failure Keeps Previous State", func(t *testing.T) {
		repo := NewMockRepository[core.Note]()
		m := core.NewNoteManager(repo, nil)
		seedNotes(t, m)

		repo.loadErr = core.ErrDocumentCorrupted
		err := m.Load(ctx)
		assert.ErrorIs(t, err, core.ErrDocumentCorrupted)
		assert.Equal(t, []int{1, 2, 3}, ids(m.List()))
	})

	t.Run("Loaded Entries Are Trusted", func(t *testing.T) {
		repo := NewMockRepository(core.NewNote(1, "", "not a date"))
		m := core.NewNoteManager(repo, nil)
		require.NoError(t, m.Load(ctx))
		assert.Equal(t, 1, m.Len())
	})
}

func TestCollection_State(t *testing.T) {
	m := core.NewNoteManager(NewMockRepository[core.Note](), nil)
	seedNotes(t, m)

	state, ok := m.State().(core.CollectionState)
	require.True(t, ok)
	assert.Equal(t, "note", state.Kind)
	assert.Equal(t, 3, state.Entries)
	assert.Equal(t, "repository", state.RepositoryType)
	assert.Equal(t, "note-collection", m.ComponentType())
}

func TestCollection_WatchUnsupported(t *testing.T) {
	m := core.NewTaskManager(NewMockRepository[core.Task](), nil)
	_, err := m.Watch(context.Background())
	assert.Error(t, err)
}
