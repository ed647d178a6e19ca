package parser

import (
	"fmt"
	"strings"

	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/errors"
)

var defaultGrammar = NewGrammarParser()

// ParseDefinition parses message text into fields and constants. Blank
// lines and comments are skipped; a service separator line is malformed.
func ParseDefinition(text string) (*Definition, error) {
	return parseDefinition(text, false)
}

// ParseServiceDefinition parses a whole service definition, request and
// response together. Separator lines are skipped.
func ParseServiceDefinition(text string) (*Definition, error) {
	return parseDefinition(text, true)
}

func parseDefinition(text string, service bool) (*Definition, error) {
	def := &Definition{}

	for i, rawLine := range strings.Split(text, "\n") {
		lineNo := i + 1
		line := strings.TrimRight(rawLine, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, CommentChar) {
			continue
		}
		if trimmed == ServiceSeparator {
			if service {
				continue
			}
			return nil, errors.NewMalformedDefinitionError(lineNo, trimmed, "service separator in a message definition")
		}

		if isConstantLine(trimmed) {
			constant, err := parseConstant(trimmed, lineNo)
			if err != nil {
				return nil, err
			}
			def.Constants = append(def.Constants, constant)
			continue
		}

		ref, name, err := defaultGrammar.ParseDeclaration(stripComment(trimmed))
		if err != nil {
			return nil, errors.NewMalformedDefinitionError(lineNo, trimmed, err.Error())
		}
		def.Fields = append(def.Fields, Field{Type: ref, Name: name, Line: lineNo})
	}

	return def, nil
}

// isConstantLine reports whether an '=' appears before any comment
func isConstantLine(line string) bool {
	eq := strings.Index(line, ConstantChar)
	if eq < 0 {
		return false
	}
	hash := strings.Index(line, CommentChar)
	return hash < 0 || eq < hash
}

// parseConstant parses "<type> <NAME>=<value>". String values run to the end
// of the line and may contain '#'; other values stop at a comment.
func parseConstant(line string, lineNo int) (Constant, error) {
	left, value, _ := strings.Cut(line, ConstantChar)

	ref, name, err := defaultGrammar.ParseDeclaration(left)
	if err != nil {
		return Constant{}, errors.NewMalformedDefinitionError(lineNo, line, err.Error())
	}
	if !ref.IsPrimitive() || ref.IsArray {
		return Constant{}, errors.NewMalformedDefinitionError(lineNo, line,
			fmt.Sprintf("constant type must be a primitive, got %s", ref.BaseType()))
	}
	if ref.Name == "time" || ref.Name == "duration" {
		return Constant{}, errors.NewMalformedDefinitionError(lineNo, line,
			fmt.Sprintf("%s constants are not supported", ref.Name))
	}

	if ref.Name != "string" {
		value = stripComment(value)
	}
	value = strings.TrimSpace(value)
	if value == "" && ref.Name != "string" {
		return Constant{}, errors.NewMalformedDefinitionError(lineNo, line, "constant has no value")
	}

	return Constant{Type: ref, Name: name, Value: value, Line: lineNo}, nil
}

// stripComment removes a trailing comment and surrounding whitespace
func stripComment(line string) string {
	if idx := strings.Index(line, CommentChar); idx >= 0 {
		line = line[:idx]
	}
	return strings.TrimSpace(line)
}
