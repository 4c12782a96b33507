package platform

import (
	"os"
	"path/filepath"
)

// ResolvePath determines the document location for a user supplied path.
// An empty path selects defaultName in the working directory and an
// existing directory selects defaultName inside it.
func ResolvePath(userPath, defaultName string) string {
	if userPath == "" {
		return defaultName
	}
	if isDir(userPath) {
		return filepath.Join(userPath, defaultName)
	}
	return userPath
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
