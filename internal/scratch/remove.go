package scratch

import (
	"os"
	"path/filepath"
)

// Remove recursively deletes everything under dir and then dir itself,
// returning the number of entries that could not be removed. Cleanup is
// advisory: callers log a nonzero count and move on. Symbolic links are
// removed as plain entries, never followed.
func Remove(dir string) int {
	failed := removeContents(dir)
	if err := os.Remove(dir); err != nil {
		failed++
	}
	return failed
}

func removeContents(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 1
	}

	failed := 0
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			failed += removeContents(path)
			if err := os.Remove(path); err != nil {
				failed++
			}
			continue
		}
		if err := os.Remove(path); err != nil {
			failed++
		}
	}
	return failed
}
