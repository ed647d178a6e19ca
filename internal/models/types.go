package models

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Kind identifies a definition category by directory and suffix convention
type Kind struct {
	Name   string // human readable name, e.g. "message"
	Dir    string // directory a definition file must live in
	Suffix string // file extension including the dot
}

var (
	// MessageKind matches <pkg>/msg/<Name>.msg
	MessageKind = Kind{Name: "message", Dir: "msg", Suffix: ".msg"}
	// ServiceKind matches <pkg>/srv/<Name>.srv
	ServiceKind = Kind{Name: "service", Dir: "srv", Suffix: ".srv"}
)

// String returns the kind name
func (k Kind) String() string {
	return k.Name
}

// Matches reports whether path qualifies as a definition file of this kind:
// the extension must match and the immediate parent directory must be k.Dir.
func (k Kind) Matches(path string) bool {
	if filepath.Ext(path) != k.Suffix {
		return false
	}
	return filepath.Base(filepath.Dir(path)) == k.Dir
}

// TypeName returns the type name encoded in a definition file path
func (k Kind) TypeName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), k.Suffix)
}

// TypeIdentifier names a definition type. Equality is by full name.
type TypeIdentifier struct {
	Package string
	Name    string
}

// NewTypeIdentifier creates an identifier
func NewTypeIdentifier(pkg, name string) TypeIdentifier {
	return TypeIdentifier{Package: pkg, Name: name}
}

// ParseTypeIdentifier splits "pkg/Name" into an identifier
func ParseTypeIdentifier(fullName string) (TypeIdentifier, error) {
	pkg, name, ok := strings.Cut(fullName, "/")
	if !ok || pkg == "" || name == "" || strings.Contains(name, "/") {
		return TypeIdentifier{}, fmt.Errorf("invalid type name %q: expected <package>/<name>", fullName)
	}
	return TypeIdentifier{Package: pkg, Name: name}, nil
}

// FullName returns package + "/" + name
func (t TypeIdentifier) FullName() string {
	return t.Package + "/" + t.Name
}

// String implements fmt.Stringer
func (t TypeIdentifier) String() string {
	return t.FullName()
}

// WithSuffix returns an identifier in the same package with suffix appended to the name
func (t TypeIdentifier) WithSuffix(suffix string) TypeIdentifier {
	return TypeIdentifier{Package: t.Package, Name: t.Name + suffix}
}

// WithPackage returns the identifier re-keyed to pkg
func (t TypeIdentifier) WithPackage(pkg string) TypeIdentifier {
	return TypeIdentifier{Package: pkg, Name: t.Name}
}
