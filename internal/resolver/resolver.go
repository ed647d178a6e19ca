package resolver

import (
	"strings"

	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/errors"
	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/models"
	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/parser"
)

// Lookup fetches definition text by full type name. *provider.Chain satisfies it.
type Lookup interface {
	Get(fullName string) (string, error)
}

// Resolver expands a definition into a self-describing declaration by
// appending the definition of every type it transitively references
type Resolver struct {
	lookup Lookup
}

// New creates a resolver reading definitions through lookup
func New(lookup Lookup) *Resolver {
	return &Resolver{lookup: lookup}
}

// Resolve fetches the definition of id and resolves it
func (r *Resolver) Resolve(id models.TypeIdentifier, isMessage bool) (*models.ResolvedDeclaration, error) {
	text, err := r.lookup.Get(id.FullName())
	if err != nil {
		return nil, attribute(err, id.FullName())
	}
	return r.ResolveText(id, text, isMessage)
}

// ResolveText resolves text as the definition of id. Service halves are
// resolved this way since they have no file of their own.
//
// Dependencies are appended depth-first in the order their fields first
// appear. Each reachable type appears once, and the root never appears as
// its own dependency.
func (r *Resolver) ResolveText(id models.TypeIdentifier, text string, isMessage bool) (*models.ResolvedDeclaration, error) {
	root := id.FullName()

	parse := parser.ParseDefinition
	if !isMessage {
		parse = parser.ParseServiceDefinition
	}
	def, err := parse(text)
	if err != nil {
		return nil, attribute(err, root)
	}

	var b strings.Builder
	b.WriteString(text)

	seen := map[string]bool{root: true}
	if err := r.appendDependencies(&b, root, id.Package, def, seen); err != nil {
		return nil, err
	}

	return &models.ResolvedDeclaration{
		Identifier: id,
		Text:       b.String(),
		IsMessage:  isMessage,
	}, nil
}

func (r *Resolver) appendDependencies(b *strings.Builder, root, contextPackage string, def *parser.Definition, seen map[string]bool) error {
	for _, ref := range def.References(contextPackage) {
		fullName := ref.FullName()
		if seen[fullName] {
			continue
		}
		seen[fullName] = true

		text, err := r.lookup.Get(fullName)
		if err != nil {
			return attribute(err, root)
		}

		dep, err := parser.ParseDefinition(text)
		if err != nil {
			return attribute(err, fullName)
		}

		parser.AppendBlock(b, fullName, text)

		if err := r.appendDependencies(b, root, ref.Package, dep, seen); err != nil {
			return err
		}
	}
	return nil
}

// Dependencies returns the types whose definitions decl carries, in order
func (r *Resolver) Dependencies(decl *models.ResolvedDeclaration) ([]models.TypeIdentifier, error) {
	_, blocks := parser.SplitClosure(decl.Text)

	ids := make([]models.TypeIdentifier, 0, len(blocks))
	for _, block := range blocks {
		id, err := models.ParseTypeIdentifier(block.Type)
		if err != nil {
			return nil, errors.Wrapf(errors.MalformedDefinitionErrorCode, err,
				"declaration %s carries an invalid marker", decl.FullName())
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// attribute names typeName on definition errors that do not name a type yet
func attribute(err error, typeName string) error {
	var missing *errors.MissingDefinitionError
	if errors.As(err, &missing) {
		return missing.ForType(typeName)
	}

	var malformed *errors.MalformedDefinitionError
	if errors.As(err, &malformed) {
		return malformed.ForType(typeName)
	}

	return err
}
