package generator

import "github.com/CentralLabFacilities/rosjava-bootstrap/internal/models"

// Emitter renders a resolved declaration as a source artifact
type Emitter interface {
	Emit(decl *models.ResolvedDeclaration) (string, error)
	FileExtension() string
}
