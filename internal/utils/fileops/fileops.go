package fileops

import (
	"os"
	"path/filepath"

	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/errors"
)

// FileOps performs the file operations of a generation run. Reads go
// through a shared content cache; every failure is a FileSystemError.
type FileOps struct {
	cache *ContentCache
}

// NewFileOps creates a FileOps with its own cache
func NewFileOps() *FileOps {
	return NewFileOpsWithCache(NewContentCache())
}

// NewFileOpsWithCache creates a FileOps sharing cache
func NewFileOpsWithCache(cache *ContentCache) *FileOps {
	return &FileOps{cache: cache}
}

// Cache returns the content cache
func (fo *FileOps) Cache() *ContentCache {
	return fo.cache
}

// ReadFile returns the text of a file, from the cache while it is unchanged
func (fo *FileOps) ReadFile(path string) (string, error) {
	clean, err := existingPath(path)
	if err != nil {
		return "", errors.WrapFileSystemError("read", path, err)
	}

	if text, ok := fo.cache.Get(clean); ok {
		return text, nil
	}

	content, err := os.ReadFile(clean)
	if err != nil {
		return "", errors.WrapFileSystemError("read", clean, err)
	}

	text := string(content)
	fo.cache.Put(clean, text)
	return text, nil
}

// WriteFile writes content to path
func (fo *FileOps) WriteFile(path string, content []byte, perm os.FileMode) error {
	clean, err := CleanPath(path)
	if err != nil {
		return errors.WrapFileSystemError("write", path, err)
	}

	if err := os.WriteFile(clean, content, perm); err != nil {
		return errors.WrapFileSystemError("write", clean, err)
	}
	fo.cache.Invalidate(clean)
	return nil
}

// EnsureDir creates dir and any missing parents
func (fo *FileOps) EnsureDir(dir string) error {
	clean, err := CleanPath(dir)
	if err != nil {
		return errors.WrapFileSystemError("create directory", dir, err)
	}

	if err := os.MkdirAll(clean, 0755); err != nil {
		return errors.WrapFileSystemError("create directory", clean, err)
	}
	return nil
}

// RemoveFile removes an existing file
func (fo *FileOps) RemoveFile(path string) error {
	clean, err := existingPath(path)
	if err != nil {
		return errors.WrapFileSystemError("remove", path, err)
	}

	if err := os.Remove(clean); err != nil {
		return errors.WrapFileSystemError("remove", clean, err)
	}
	fo.cache.Invalidate(clean)
	return nil
}

// Abs resolves path to a cleaned absolute path
func (fo *FileOps) Abs(path string) (string, error) {
	clean, err := CleanPath(path)
	if err != nil {
		return "", errors.WrapFileSystemError("resolve path", path, err)
	}

	abs, err := filepath.Abs(clean)
	if err != nil {
		return "", errors.WrapFileSystemError("resolve path", clean, err)
	}
	return abs, nil
}

// Exists reports whether path exists
func (fo *FileOps) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir reports whether path is an existing directory
func (fo *FileOps) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsFile reports whether path is an existing non-directory
func (fo *FileOps) IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
