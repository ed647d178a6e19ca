package templates

import (
	"sort"
	"strconv"
	"strings"
)

// ImportManager collects the imports of one generated file. Standard
// library imports form the first group, generated packages the second.
type ImportManager struct {
	std       map[string]bool
	generated map[string]string // import path -> alias, "" for none
}

// NewImportManager creates an empty import manager
func NewImportManager() *ImportManager {
	return &ImportManager{
		std:       make(map[string]bool),
		generated: make(map[string]string),
	}
}

// AddImport adds a standard library import
func (im *ImportManager) AddImport(importPath string) {
	if importPath != "" {
		im.std[importPath] = true
	}
}

// AddPackageImport adds the import of a generated package
func (im *ImportManager) AddPackageImport(alias, importPath string) {
	if importPath != "" {
		im.generated[importPath] = alias
	}
}

// GenerateImports renders the import declaration, or "" when there is nothing to import
func (im *ImportManager) GenerateImports() string {
	var groups [][]string
	if specs := im.stdSpecs(); len(specs) > 0 {
		groups = append(groups, specs)
	}
	if specs := im.generatedSpecs(); len(specs) > 0 {
		groups = append(groups, specs)
	}

	switch {
	case len(groups) == 0:
		return ""
	case len(groups) == 1 && len(groups[0]) == 1:
		return "import " + groups[0][0] + "\n"
	}

	var b strings.Builder
	b.WriteString("import (\n")
	for i, group := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, spec := range group {
			b.WriteString("\t" + spec + "\n")
		}
	}
	b.WriteString(")\n")
	return b.String()
}

func (im *ImportManager) stdSpecs() []string {
	specs := make([]string, 0, len(im.std))
	for importPath := range im.std {
		specs = append(specs, strconv.Quote(importPath))
	}
	sort.Strings(specs)
	return specs
}

func (im *ImportManager) generatedSpecs() []string {
	paths := make([]string, 0, len(im.generated))
	for importPath := range im.generated {
		paths = append(paths, importPath)
	}
	sort.Strings(paths)

	specs := make([]string, 0, len(paths))
	for _, importPath := range paths {
		spec := strconv.Quote(importPath)
		if alias := im.generated[importPath]; alias != "" {
			spec = alias + " " + spec
		}
		specs = append(specs, spec)
	}
	return specs
}
