package parser

import "github.com/CentralLabFacilities/rosjava-bootstrap/internal/models"

// TypeRef is the declared type of a field or constant
type TypeRef struct {
	Package  string // explicit package qualifier, empty when unqualified
	Name     string
	IsArray  bool
	ArrayLen int // fixed length, 0 for variable-length arrays
}

// IsPrimitive reports whether the type is a primitive rather than a reference
func (t TypeRef) IsPrimitive() bool {
	return t.Package == "" && IsPrimitive(t.Name)
}

// Resolve qualifies a compound type. Unqualified names belong to contextPackage,
// the package of the definition containing the field, except built-in compounds.
func (t TypeRef) Resolve(contextPackage string) models.TypeIdentifier {
	if t.Package != "" {
		return models.NewTypeIdentifier(t.Package, t.Name)
	}
	if pkg, ok := builtinCompounds[t.Name]; ok {
		return models.NewTypeIdentifier(pkg, t.Name)
	}
	return models.NewTypeIdentifier(contextPackage, t.Name)
}

// BaseType returns the type as written, without array brackets
func (t TypeRef) BaseType() string {
	if t.Package == "" {
		return t.Name
	}
	return t.Package + "/" + t.Name
}

// Field is a value declared by a definition
type Field struct {
	Type TypeRef
	Name string
	Line int
}

// Constant is a named constant declared by a definition
type Constant struct {
	Type  TypeRef
	Name  string
	Value string
	Line  int
}

// Definition is the parsed form of one definition block
type Definition struct {
	Fields    []Field
	Constants []Constant
}

// References returns every distinct compound type the fields refer to, in
// first-seen order, qualified against contextPackage
func (d *Definition) References(contextPackage string) []models.TypeIdentifier {
	seen := make(map[string]bool)
	var refs []models.TypeIdentifier
	for _, field := range d.Fields {
		if field.Type.IsPrimitive() {
			continue
		}
		id := field.Type.Resolve(contextPackage)
		if seen[id.FullName()] {
			continue
		}
		seen[id.FullName()] = true
		refs = append(refs, id)
	}
	return refs
}
