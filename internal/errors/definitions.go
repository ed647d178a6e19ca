package errors

import "fmt"

// MissingDefinitionError reports a type whose definition no provider holds.
// TypeName is the root being resolved, Missing the type that could not be found.
type MissingDefinitionError struct {
	*BaseError
	TypeName string
	Missing  string
}

// NewMissingDefinitionError creates a missing definition error for the root typeName
func NewMissingDefinitionError(typeName, missing string, cause error) *MissingDefinitionError {
	var message string
	if typeName == "" || typeName == missing {
		message = fmt.Sprintf("no definition found for '%s'", missing)
	} else {
		message = fmt.Sprintf("no definition found for '%s' referenced by '%s'", missing, typeName)
	}

	return &MissingDefinitionError{
		BaseError: Wrap(MissingDefinitionErrorCode, message, cause).
			WithContext("type", typeName).
			WithContext("missing", missing).
			WithSuggestions(
				fmt.Sprintf("Add the package providing '%s' to the package or source paths", missing),
				"Check the spelling and package qualifier of the field type",
			),
		TypeName: typeName,
		Missing:  missing,
	}
}

// ForType returns a copy of the error attributed to the given root type
func (e *MissingDefinitionError) ForType(typeName string) *MissingDefinitionError {
	if e.TypeName == typeName {
		return e
	}
	return NewMissingDefinitionError(typeName, e.Missing, e.Cause)
}

// MalformedDefinitionError reports definition text that cannot be parsed
type MalformedDefinitionError struct {
	*BaseError
	TypeName string
	Line     int
	Text     string
}

// NewMalformedDefinitionError creates a malformed definition error for one line
func NewMalformedDefinitionError(line int, text, reason string) *MalformedDefinitionError {
	message := fmt.Sprintf("malformed definition line %d %q: %s", line, text, reason)
	return &MalformedDefinitionError{
		BaseError: New(MalformedDefinitionErrorCode, message).
			WithContext("line", line).
			WithContext("text", text),
		Line: line,
		Text: text,
	}
}

// ForType attributes the error to typeName and returns it
func (e *MalformedDefinitionError) ForType(typeName string) *MalformedDefinitionError {
	if e.TypeName == "" {
		e.TypeName = typeName
		e.Message = fmt.Sprintf("%s: %s", typeName, e.Message)
		e.WithContext("type", typeName)
	}
	return e
}

// GenerationError reports an emitter failure for a single generation unit
type GenerationError struct {
	*BaseError
	TypeName string
	Stage    string
}

// NewGenerationError creates a generation error for typeName
func NewGenerationError(typeName, message string) *GenerationError {
	return &GenerationError{
		BaseError: New(GenerationErrorCode, fmt.Sprintf("failed to generate %s: %s", typeName, message)).
			WithContext("type", typeName),
		TypeName: typeName,
	}
}

// WrapGenerateError wraps an error with a "failed to generate" message
func WrapGenerateError(typeName string, cause error) *GenerationError {
	return &GenerationError{
		BaseError: Wrap(GenerationErrorCode, fmt.Sprintf("failed to generate %s", typeName), cause).
			WithContext("type", typeName),
		TypeName: typeName,
	}
}
