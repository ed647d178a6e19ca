package errors

import "fmt"

// GenError is implemented by every generator error
type GenError interface {
	error
	ErrorCode() ErrorCode
	Location() SourceLocation
	Context() map[string]interface{}
	Suggestions() []string
	Unwrap() error
}

// ErrorCode classifies a GenError
type ErrorCode int

const (
	UnknownErrorCode ErrorCode = iota

	// Run-level
	ConfigurationErrorCode
	FileSystemErrorCode

	// Per generation unit
	MissingDefinitionErrorCode
	MalformedDefinitionErrorCode
	GenerationErrorCode
	TemplateErrorCode
)

var codeNames = map[ErrorCode]string{
	ConfigurationErrorCode:       "ConfigurationError",
	FileSystemErrorCode:          "FileSystemError",
	MissingDefinitionErrorCode:   "MissingDefinitionError",
	MalformedDefinitionErrorCode: "MalformedDefinitionError",
	GenerationErrorCode:          "GenerationError",
	TemplateErrorCode:            "TemplateError",
}

func (e ErrorCode) String() string {
	if name, ok := codeNames[e]; ok {
		return name
	}
	return "UnknownError"
}

// IsFatal reports whether errors of this code abort the whole run rather
// than a single generation unit
func (e ErrorCode) IsFatal() bool {
	return e == ConfigurationErrorCode || e == FileSystemErrorCode
}

// SourceLocation points into a definition file
type SourceLocation struct {
	File   string
	Line   int // 1-based, 0 when unknown
	Column int // 1-based, 0 when unknown
}

func (s SourceLocation) String() string {
	switch {
	case s.File == "":
		return "unknown location"
	case s.Line == 0:
		return s.File
	case s.Column == 0:
		return fmt.Sprintf("%s:%d", s.File, s.Line)
	default:
		return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Column)
	}
}

// IsEmpty reports whether the location names no file
func (s SourceLocation) IsEmpty() bool {
	return s.File == ""
}

// BaseError is the common GenError implementation the typed errors embed
type BaseError struct {
	Code        ErrorCode
	Message     string
	Loc         SourceLocation
	Cause       error
	ContextData map[string]interface{}
	Hints       []string
}

func (e *BaseError) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	if e.Loc.IsEmpty() {
		return msg
	}
	return fmt.Sprintf("%s: %s", e.Loc, msg)
}

func (e *BaseError) ErrorCode() ErrorCode {
	return e.Code
}

func (e *BaseError) Location() SourceLocation {
	return e.Loc
}

// Context returns the context data, never nil
func (e *BaseError) Context() map[string]interface{} {
	if e.ContextData == nil {
		return map[string]interface{}{}
	}
	return e.ContextData
}

func (e *BaseError) Suggestions() []string {
	return e.Hints
}

func (e *BaseError) Unwrap() error {
	return e.Cause
}

// WithLocation sets the location and returns e
func (e *BaseError) WithLocation(loc SourceLocation) *BaseError {
	e.Loc = loc
	return e
}

// WithContext adds a context entry and returns e
func (e *BaseError) WithContext(key string, value interface{}) *BaseError {
	if e.ContextData == nil {
		e.ContextData = make(map[string]interface{})
	}
	e.ContextData[key] = value
	return e
}

// WithSuggestions appends hints and returns e
func (e *BaseError) WithSuggestions(suggestions ...string) *BaseError {
	e.Hints = append(e.Hints, suggestions...)
	return e
}

// New creates a BaseError
func New(code ErrorCode, message string) *BaseError {
	return &BaseError{Code: code, Message: message}
}

// Wrap creates a BaseError caused by cause
func Wrap(code ErrorCode, message string, cause error) *BaseError {
	return &BaseError{Code: code, Message: message, Cause: cause}
}

// Wrapf is Wrap with a formatted message
func Wrapf(code ErrorCode, cause error, format string, args ...interface{}) *BaseError {
	return Wrap(code, fmt.Sprintf(format, args...), cause)
}

// CodeOf returns the code of the first GenError in err's chain
func CodeOf(err error) ErrorCode {
	var genErr GenError
	if As(err, &genErr) {
		return genErr.ErrorCode()
	}
	return UnknownErrorCode
}
