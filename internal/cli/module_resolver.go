package cli

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"

	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/utils"
	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/utils/fileops"
)

// ModuleResolver handles resolving the Go import path of the output directory
type ModuleResolver struct {
	fileOps *fileops.FileOps
	gomod   *utils.GoModParser
}

// NewModuleResolver creates a new module resolver
func NewModuleResolver(ops *fileops.FileOps) *ModuleResolver {
	if ops == nil {
		ops = fileops.NewFileOps()
	}
	return &ModuleResolver{
		fileOps: ops,
		gomod:   utils.NewGoModParser(ops),
	}
}

// ResolveImportBase returns the import path generated packages live under.
// A custom module is used as given. Otherwise the module of the nearest
// go.mod above outputDir is joined with outputDir's path inside that module.
// The result is empty when there is no go.mod.
func (r *ModuleResolver) ResolveImportBase(customModule, outputDir string) (string, error) {
	if customModule != "" {
		return customModule, nil
	}

	absOutput, err := r.fileOps.Abs(outputDir)
	if err != nil {
		return "", err
	}

	module, err := r.gomod.Locate(absOutput)
	if errors.Is(err, utils.ErrNoGoMod) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to determine module name: %w (consider using --module flag)", err)
	}

	return r.BuildPackagePath(module.Path, module.Dir, absOutput)
}

// BuildPackagePath builds the import path of packageDir inside the module rooted at moduleRoot
func (r *ModuleResolver) BuildPackagePath(moduleName, moduleRoot, packageDir string) (string, error) {
	relPath, err := filepath.Rel(moduleRoot, packageDir)
	if err != nil {
		return "", fmt.Errorf("failed to calculate relative path: %w", err)
	}

	importPath := filepath.ToSlash(relPath)
	if importPath == "." {
		return moduleName, nil
	}

	return path.Join(moduleName, importPath), nil
}
