package definition

import (
	"sort"

	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/models"
)

// Index is an immutable snapshot of the definitions of one kind, keyed by
// full type name
type Index struct {
	kind        models.Kind
	definitions map[string]models.RawDefinition
	byPackage   map[string][]models.TypeIdentifier
	shadowed    []models.Shadow
}

func newIndex(kind models.Kind) *Index {
	return &Index{
		kind:        kind,
		definitions: make(map[string]models.RawDefinition),
		byPackage:   make(map[string][]models.TypeIdentifier),
	}
}

// add stores def, replacing and recording any earlier definition of the same type
func (i *Index) add(def models.RawDefinition) {
	fullName := def.Identifier.FullName()

	if existing, ok := i.definitions[fullName]; ok {
		i.shadowed = append(i.shadowed, models.Shadow{
			Identifier: def.Identifier,
			Kept:       def.Path,
			Discarded:  existing.Path,
		})
	} else {
		i.byPackage[def.Identifier.Package] = append(i.byPackage[def.Identifier.Package], def.Identifier)
	}

	i.definitions[fullName] = def
}

// Kind returns the kind of every definition in the index
func (i *Index) Kind() models.Kind {
	return i.kind
}

// Len returns the number of indexed definitions
func (i *Index) Len() int {
	return len(i.definitions)
}

// Packages returns every package holding at least one definition, sorted
func (i *Index) Packages() []string {
	packages := make([]string, 0, len(i.byPackage))
	for pkg := range i.byPackage {
		packages = append(packages, pkg)
	}
	sort.Strings(packages)
	return packages
}

// IdentifiersByPackage returns the identifiers of pkg sorted by name. The
// result is empty, never nil, for an unknown package.
func (i *Index) IdentifiersByPackage(pkg string) []models.TypeIdentifier {
	ids := make([]models.TypeIdentifier, len(i.byPackage[pkg]))
	copy(ids, i.byPackage[pkg])
	sort.Slice(ids, func(a, b int) bool {
		return ids[a].Name < ids[b].Name
	})
	return ids
}

// Definition returns the raw definition stored under fullName
func (i *Index) Definition(fullName string) (models.RawDefinition, bool) {
	def, ok := i.definitions[fullName]
	return def, ok
}

// Lookup returns the definition text stored under fullName
func (i *Index) Lookup(fullName string) (string, bool) {
	def, ok := i.definitions[fullName]
	if !ok {
		return "", false
	}
	return def.Text, true
}

// Shadowed returns every definition replaced by a later one of the same
// type, in scan order
func (i *Index) Shadowed() []models.Shadow {
	shadowed := make([]models.Shadow, len(i.shadowed))
	copy(shadowed, i.shadowed)
	return shadowed
}
