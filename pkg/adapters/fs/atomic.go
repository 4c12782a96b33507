package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/almanac/pkg/core"
)

const (
	// TempFilePrefix names the scratch file a document is staged in before it
	// replaces the real one.
	TempFilePrefix = "almanac-tmp-"

	documentPerm  os.FileMode = 0644
	directoryPerm os.FileMode = 0755
)

// writeDocument replaces the document at path with data. The parent
// directory is created when missing. Content is staged in a temp file next to
// the target, synced, then renamed over it, so readers see either the old or
// the new document. Every failure wraps core.ErrPersistence and the temp file
// is always removed.
func writeDocument(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, directoryPerm); err != nil {
		return fmt.Errorf("%w: create directory for %s: %w", core.ErrPersistence, path, err)
	}

	tmp, err := os.CreateTemp(dir, TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("%w: stage %s: %w", core.ErrPersistence, path, err)
	}
	staged := tmp.Name()
	defer os.Remove(staged)

	if err := stage(tmp, data); err != nil {
		return fmt.Errorf("%w: stage %s: %w", core.ErrPersistence, path, err)
	}
	if err := os.Chmod(staged, documentPerm); err != nil {
		return fmt.Errorf("%w: stage %s: %w", core.ErrPersistence, path, err)
	}
	if err := os.Rename(staged, path); err != nil {
		return fmt.Errorf("%w: replace %s: %w", core.ErrPersistence, path, err)
	}
	return nil
}

func stage(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
