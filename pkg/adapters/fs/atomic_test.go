package fs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/almanac/pkg/core"
)

func assertNoStagedFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), TempFilePrefix), "leftover temp file %s", e.Name())
	}
}

func TestWriteDocument(t *testing.T) {
	t.Run("Creates New File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notes.json")

		require.NoError(t, writeDocument(path, []byte(`{"Notes": []}`)))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, `{"Notes": []}`, string(got))
	})

	t.Run("Overwrites Existing File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tasks.json")
		require.NoError(t, os.WriteFile(path, []byte("initial"), 0644))

		require.NoError(t, writeDocument(path, []byte("overwritten")))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "overwritten", string(got))
	})

	t.Run("Leaves No Temp Files", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, writeDocument(filepath.Join(dir, "notes.json"), []byte("{}")))

		assertNoStagedFiles(t, dir)
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("Creates Missing Directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "deeper", "notes.json")

		require.NoError(t, writeDocument(path, []byte("{}")))
		assert.FileExists(t, path)
	})

	t.Run("Rename Onto Directory Fails Cleanly", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "tasks.json")
		require.NoError(t, os.Mkdir(target, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(target, "keep"), []byte("x"), 0644))

		err := writeDocument(target, []byte("{}"))
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrPersistence)
		assert.Contains(t, err.Error(), "replace")

		assertNoStagedFiles(t, dir)
		assert.DirExists(t, target)
	})

	t.Run("Directory Creation Failure Keeps Cause", func(t *testing.T) {
		dir := t.TempDir()
		blocker := filepath.Join(dir, "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("file"), 0644))

		err := writeDocument(filepath.Join(blocker, "notes.json"), []byte("{}"))
		assert.ErrorIs(t, err, core.ErrPersistence)
		var pathErr *os.PathError
		assert.ErrorAs(t, err, &pathErr)
	})
}
