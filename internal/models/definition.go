package models

// RawDefinition is definition text exactly as read from disk
type RawDefinition struct {
	Identifier TypeIdentifier
	Text       string
	Kind       Kind
	Path       string // file the text was read from
	Root       string // registered directory the file was found under
}

// ResolvedDeclaration is a type's own text followed by the marker-delimited
// definitions of every type it transitively references
type ResolvedDeclaration struct {
	Identifier TypeIdentifier
	Text       string
	IsMessage  bool // false for a service container, which gets no field scaffolding
}

// Package returns the declaration's package
func (d *ResolvedDeclaration) Package() string {
	return d.Identifier.Package
}

// Name returns the declaration's type name
func (d *ResolvedDeclaration) Name() string {
	return d.Identifier.Name
}

// FullName returns the declaration's full type name
func (d *ResolvedDeclaration) FullName() string {
	return d.Identifier.FullName()
}

// Shadow records a definition replaced by one found under a later root
type Shadow struct {
	Identifier TypeIdentifier
	Kept       string // path of the definition that won
	Discarded  string // path of the definition that was overwritten
}
