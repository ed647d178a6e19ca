package models

// UnitRole says what a generation unit stands for
type UnitRole int

const (
	RoleMessage UnitRole = iota
	RoleServiceContainer
	RoleServiceRequest
	RoleServiceResponse
)

// String returns the role name used in diagnostics
func (r UnitRole) String() string {
	switch r {
	case RoleServiceContainer:
		return "service"
	case RoleServiceRequest:
		return "service request"
	case RoleServiceResponse:
		return "service response"
	default:
		return "message"
	}
}

// IsMessage reports whether the unit gets field accessor and constant scaffolding
func (r UnitRole) IsMessage() bool {
	return r != RoleServiceContainer
}

// GenerationUnit is one declaration submitted to the emitter
type GenerationUnit struct {
	Identifier TypeIdentifier
	Role       UnitRole
}

// UnitFailure records a unit that could not be generated
type UnitFailure struct {
	Type string // full type name
	Role UnitRole
	Err  error
}

// GenerationSummary describes the outcome of a generation run
type GenerationSummary struct {
	PackagesProcessed int
	MessagesFound     int
	ServicesFound     int
	UnitsAttempted    int
	UnitsGenerated    int
	EmptyPackages     []string
	Shadowed          []Shadow
	Failures          []UnitFailure
	GeneratedFiles    []string
}

// NewGenerationSummary creates an empty summary
func NewGenerationSummary() GenerationSummary {
	return GenerationSummary{
		EmptyPackages:  make([]string, 0),
		Shadowed:       make([]Shadow, 0),
		Failures:       make([]UnitFailure, 0),
		GeneratedFiles: make([]string, 0),
	}
}

// FailedTypes returns the full names of every failed unit in order
func (s GenerationSummary) FailedTypes() []string {
	names := make([]string, 0, len(s.Failures))
	for _, f := range s.Failures {
		names = append(names, f.Type)
	}
	return names
}
