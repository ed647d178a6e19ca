package generator

import (
	"fmt"
	"path"

	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/parser"
	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/templates"
)

// goPrimitives maps primitive definition types to Go types
var goPrimitives = map[string]string{
	"bool":     "bool",
	"byte":     "int8",
	"char":     "uint8",
	"int8":     "int8",
	"uint8":    "uint8",
	"int16":    "int16",
	"uint16":   "uint16",
	"int32":    "int32",
	"uint32":   "uint32",
	"int64":    "int64",
	"uint64":   "uint64",
	"float32":  "float32",
	"float64":  "float64",
	"string":   "string",
	"time":     "time.Time",
	"duration": "time.Duration",
}

// TypeMapper maps definition field types to Go types for one generated
// package, recording the imports the mapped types need
type TypeMapper struct {
	pkg        string
	importBase string
	imports    *templates.ImportManager
}

// NewTypeMapper creates a mapper for types declared in pkg. Other definition
// packages are imported below importBase.
func NewTypeMapper(pkg, importBase string) *TypeMapper {
	return &TypeMapper{
		pkg:        pkg,
		importBase: importBase,
		imports:    templates.NewImportManager(),
	}
}

// GoType returns the Go type for ref
func (m *TypeMapper) GoType(ref parser.TypeRef) (string, error) {
	if ref.IsArray && ref.IsPrimitive() && (ref.Name == "uint8" || ref.Name == "byte") {
		if ref.ArrayLen > 0 {
			return fmt.Sprintf("[%d]byte", ref.ArrayLen), nil
		}
		return "[]byte", nil
	}

	elem, err := m.elementType(ref)
	if err != nil {
		return "", err
	}

	switch {
	case !ref.IsArray:
		return elem, nil
	case ref.ArrayLen > 0:
		return fmt.Sprintf("[%d]%s", ref.ArrayLen, elem), nil
	default:
		return "[]" + elem, nil
	}
}

func (m *TypeMapper) elementType(ref parser.TypeRef) (string, error) {
	if ref.IsPrimitive() {
		goType, ok := goPrimitives[ref.Name]
		if !ok {
			return "", fmt.Errorf("unsupported primitive type %s", ref.Name)
		}
		if ref.Name == "time" || ref.Name == "duration" {
			m.imports.AddImport("time")
		}
		return goType, nil
	}

	id := ref.Resolve(m.pkg)
	if id.Package == m.pkg {
		return id.Name, nil
	}

	qualifier := templates.ToPackageName(id.Package)
	importPath := path.Join(m.importBase, id.Package)
	if path.Base(importPath) == qualifier {
		m.imports.AddPackageImport("", importPath)
	} else {
		m.imports.AddPackageImport(qualifier, importPath)
	}
	return qualifier + "." + id.Name, nil
}

// Imports returns the import block for every type mapped so far
func (m *TypeMapper) Imports() string {
	return m.imports.GenerateImports()
}
