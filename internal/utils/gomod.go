package utils

import (
	stderrors "errors"
	"fmt"
	"path/filepath"

	"golang.org/x/mod/modfile"

	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/utils/fileops"
)

// ErrNoGoMod is returned by Locate when no go.mod exists above the start directory
var ErrNoGoMod = stderrors.New("no go.mod found")

// GoModule is a located Go module
type GoModule struct {
	Path string // module path from the module directive
	Dir  string // directory holding go.mod
}

// GoModParser finds and reads go.mod files
type GoModParser struct {
	fileOps *fileops.FileOps
}

// NewGoModParser creates a parser sharing the given FileOps cache
func NewGoModParser(ops *fileops.FileOps) *GoModParser {
	return &GoModParser{fileOps: ops}
}

// Locate returns the module owning dir: the nearest go.mod in dir or any parent
func (p *GoModParser) Locate(dir string) (*GoModule, error) {
	for current := filepath.Clean(dir); ; {
		goModPath := filepath.Join(current, "go.mod")
		if p.fileOps.IsFile(goModPath) {
			modulePath, err := p.ParseModulePath(goModPath)
			if err != nil {
				return nil, err
			}
			return &GoModule{Path: modulePath, Dir: current}, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return nil, fmt.Errorf("%w above %s", ErrNoGoMod, dir)
		}
		current = parent
	}
}

// ParseModulePath returns the module directive of a go.mod file
func (p *GoModParser) ParseModulePath(goModPath string) (string, error) {
	if filepath.Base(goModPath) != "go.mod" {
		return "", fmt.Errorf("file is not a go.mod file: %s", goModPath)
	}

	content, err := p.fileOps.ReadFile(goModPath)
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod file: %w", err)
	}

	file, err := modfile.ParseLax(goModPath, []byte(content), nil)
	if err != nil {
		return "", fmt.Errorf("failed to parse go.mod file: %w", err)
	}
	if file.Module == nil {
		return "", fmt.Errorf("no module declaration found in %s", goModPath)
	}
	return file.Module.Mod.Path, nil
}
