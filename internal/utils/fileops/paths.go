package fileops

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// CleanPath cleans path and rejects traversal. ".." is only allowed as a
// leading run of segments of a relative path.
func CleanPath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("file path cannot be empty")
	}

	clean := filepath.Clean(path)
	segments := strings.Split(filepath.ToSlash(clean), "/")
	first := slices.IndexFunc(segments, func(s string) bool { return s != ".." })
	if first >= 0 && slices.Contains(segments[first:], "..") {
		return "", fmt.Errorf("path traversal not allowed in file path: %s", path)
	}
	return clean, nil
}

// existingPath is CleanPath for paths that must already exist
func existingPath(path string) (string, error) {
	clean, err := CleanPath(path)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(clean); os.IsNotExist(err) {
		return "", fmt.Errorf("file does not exist: %s", clean)
	}
	return clean, nil
}
