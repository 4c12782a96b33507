package platform_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/almanac/internal/platform"
	"github.com/aretw0/almanac/pkg/core"
)

func TestOpenNotes(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing Document Opens Empty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notes.json")

		notes, err := platform.OpenNotes(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, 0, notes.Len())
		assert.NoFileExists(t, path, "opening does not create the document")
	})

	t.Run("MustExist", func(t *testing.T) {
		_, err := platform.OpenNotes(ctx, filepath.Join(t.TempDir(), "notes.json"), platform.WithMustExist(true))
		assert.ErrorIs(t, err, core.ErrDocumentNotFound)
	})

	t.Run("Reopen Sees Saved Entries", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notes.json")

		notes, err := platform.OpenNotes(ctx, path)
		require.NoError(t, err)
		require.NoError(t, notes.AddNote(ctx, 1, "Work", "2024-01-02"))

		again, err := platform.OpenNotes(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, notes.List(), again.List())
	})

	t.Run("Corrupted Document Fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notes.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

		_, err := platform.OpenNotes(ctx, path)
		assert.ErrorIs(t, err, core.ErrDocumentCorrupted)
	})

	t.Run("Directory Path Uses Default Name", func(t *testing.T) {
		dir := t.TempDir()

		notes, err := platform.OpenNotes(ctx, dir)
		require.NoError(t, err)
		require.NoError(t, notes.AddNote(ctx, 1, "Work", "2024-01-02"))
		assert.FileExists(t, filepath.Join(dir, "notes.json"))
	})
}

func TestOpenTasks(t *testing.T) {
	ctx := context.Background()

	t.Run("ReadOnly", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tasks.json")

		tasks, err := platform.OpenTasks(ctx, path, platform.WithReadOnly(true))
		require.NoError(t, err)

		err = tasks.AddTask(ctx, 1, "Write")
		assert.ErrorIs(t, err, core.ErrReadOnly)
		assert.Equal(t, 0, tasks.Len())
		assert.NoFileExists(t, path)
	})

	t.Run("YAML Document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tasks.yaml")

		tasks, err := platform.OpenTasks(ctx, path)
		require.NoError(t, err)
		require.NoError(t, tasks.AddTask(ctx, 1, "Write", core.WithDeadline("2024-05-01")))

		again, err := platform.OpenTasks(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, tasks.List(), again.List())
	})

	t.Run("Injected Repository", func(t *testing.T) {
		repo := &memoryRepo{items: []core.Task{core.NewTask(9, "Injected")}}

		tasks, err := platform.OpenTasks(ctx, "", platform.WithTaskRepository(repo))
		require.NoError(t, err)
		got, err := tasks.Get(9)
		require.NoError(t, err)
		assert.Equal(t, "Injected", got.Name)
	})
}

func TestResolvePath(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, "notes.json", platform.ResolvePath("", "notes.json"))
	assert.Equal(t, filepath.Join(dir, "notes.json"), platform.ResolvePath(dir, "notes.json"))
	assert.Equal(t, "custom.json", platform.ResolvePath("custom.json", "notes.json"))
}

type memoryRepo struct {
	items []core.Task
}

func (m *memoryRepo) Load(ctx context.Context) ([]core.Task, error) { return m.items, nil }

func (m *memoryRepo) Save(ctx context.Context, items []core.Task) error {
	m.items = items
	return nil
}
