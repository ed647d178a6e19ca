package utils

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/utils/fileops"
)

// FileProcessor provides utilities for walking definition trees and reading their files
type FileProcessor struct {
	fileOps *fileops.FileOps
}

// NewFileProcessor creates a new file processor
func NewFileProcessor() *FileProcessor {
	return &FileProcessor{
		fileOps: fileops.NewFileOps(),
	}
}

// NewFileProcessorWithOps creates a file processor sharing an existing FileOps (and its cache)
func NewFileProcessorWithOps(ops *fileops.FileOps) *FileProcessor {
	return &FileProcessor{
		fileOps: ops,
	}
}

// FileFilter defines a function that determines whether a file should be processed
type FileFilter func(path string, info fs.DirEntry) bool

// DirectoryFilter defines a function that determines whether a directory should be descended into
type DirectoryFilter func(path string, info fs.DirEntry) bool

// FileWalkOptions configures file walking behavior
type FileWalkOptions struct {
	FileFilter      FileFilter
	DirectoryFilter DirectoryFilter
	SkipErrors      bool
}

// SuffixFileFilter accepts regular files whose name ends with suffix
func SuffixFileFilter(suffix string) FileFilter {
	return func(path string, info fs.DirEntry) bool {
		return !info.IsDir() && strings.HasSuffix(info.Name(), suffix)
	}
}

// DefaultDirectoryFilter skips hidden directories and vendor trees. Build
// and install trees of a workspace are scanned like any other directory.
func DefaultDirectoryFilter() DirectoryFilter {
	return func(path string, info fs.DirEntry) bool {
		if !info.IsDir() {
			return true
		}
		name := info.Name()
		if strings.HasPrefix(name, ".") && name != "." && name != ".." {
			return false
		}
		return name != "vendor"
	}
}

// WalkFiles walks a directory tree and returns matching files in lexical order
func (fp *FileProcessor) WalkFiles(rootDir string, options FileWalkOptions) ([]string, error) {
	var matchedFiles []string

	err := filepath.WalkDir(rootDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if options.SkipErrors {
				if entry != nil && entry.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			return err
		}

		if entry.IsDir() {
			// The root itself is always scanned, whatever its name
			if path != rootDir && options.DirectoryFilter != nil && !options.DirectoryFilter(path, entry) {
				return filepath.SkipDir
			}
			return nil
		}

		if options.FileFilter == nil || options.FileFilter(path, entry) {
			matchedFiles = append(matchedFiles, path)
		}
		return nil
	})

	return matchedFiles, err
}

// ReadText reads a file as text, using the shared content cache
func (fp *FileProcessor) ReadText(path string) (string, error) {
	return fp.fileOps.ReadFile(path)
}

// RemoveMatching removes every file below rootDir accepted by filter and
// returns the removed paths. A missing rootDir is not an error.
func (fp *FileProcessor) RemoveMatching(rootDir string, filter FileFilter) ([]string, error) {
	if !fp.fileOps.IsDir(rootDir) {
		return nil, nil
	}

	files, err := fp.WalkFiles(rootDir, FileWalkOptions{
		FileFilter:      filter,
		DirectoryFilter: DefaultDirectoryFilter(),
		SkipErrors:      true,
	})
	if err != nil {
		return nil, err
	}

	removed := make([]string, 0, len(files))
	for _, file := range files {
		if err := fp.fileOps.RemoveFile(file); err != nil {
			return removed, err
		}
		removed = append(removed, file)
	}
	return removed, nil
}

// FileOps returns the underlying FileOps
func (fp *FileProcessor) FileOps() *fileops.FileOps {
	return fp.fileOps
}

// IsDirectory reports whether path exists and is a directory
func IsDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
