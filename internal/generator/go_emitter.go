package generator

import (
	"fmt"
	"strconv"

	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/errors"
	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/models"
	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/parser"
	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/templates"
	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/utils"
)

// GoEmitter renders declarations as Go interface files
type GoEmitter struct {
	importBase string
	registry   *templates.TemplateRegistry
}

// NewGoEmitter creates an emitter whose generated packages live below importBase
func NewGoEmitter(importBase string) *GoEmitter {
	return &GoEmitter{
		importBase: importBase,
		registry:   templates.DefaultTemplateRegistry,
	}
}

// FileExtension implements Emitter
func (e *GoEmitter) FileExtension() string {
	return ".go"
}

// Emit implements Emitter
func (e *GoEmitter) Emit(decl *models.ResolvedDeclaration) (string, error) {
	fullName := decl.FullName()

	own, _ := parser.SplitClosure(decl.Text)
	parse := parser.ParseDefinition
	if !decl.IsMessage {
		parse = parser.ParseServiceDefinition
	}
	def, err := parse(own)
	if err != nil {
		var malformed *errors.MalformedDefinitionError
		if errors.As(err, &malformed) {
			return "", malformed.ForType(fullName)
		}
		return "", errors.WrapGenerateError(fullName, err)
	}

	mapper := NewTypeMapper(decl.Package(), e.importBase)
	data := templates.InterfaceData{
		Package:    templates.ToPackageName(decl.Package()),
		Name:       decl.Name(),
		FullName:   fullName,
		Definition: decl.Text,
	}

	templateName := "service"
	if decl.IsMessage {
		templateName = "message"
		if data.Constants, err = e.constants(def, mapper); err != nil {
			return "", errors.WrapGenerateError(fullName, err)
		}
		if data.Fields, err = e.fields(def, mapper); err != nil {
			return "", errors.WrapGenerateError(fullName, err)
		}
	}
	data.Imports = mapper.Imports()

	source, err := e.registry.ExecuteTemplate(templateName, data)
	if err != nil {
		return "", errors.WrapTemplateError(templateName, "execute", err)
	}

	formatted, err := utils.FormatGoSource(decl.Name()+e.FileExtension(), []byte(source))
	if err != nil {
		return "", errors.WrapGenerateError(fullName, err)
	}

	return string(formatted), nil
}

func (e *GoEmitter) fields(def *parser.Definition, mapper *TypeMapper) ([]templates.FieldData, error) {
	fields := make([]templates.FieldData, 0, len(def.Fields))
	accessors := make(map[string]string)

	for _, field := range def.Fields {
		goType, err := mapper.GoType(field.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}

		accessor := templates.ToPascalCase(field.Name)
		if other, ok := accessors[accessor]; ok {
			return nil, fmt.Errorf("fields %s and %s both map to accessor %s", other, field.Name, accessor)
		}
		accessors[accessor] = field.Name

		fields = append(fields, templates.FieldData{
			Name:     field.Name,
			Accessor: accessor,
			GoType:   goType,
		})
	}
	return fields, nil
}

func (e *GoEmitter) constants(def *parser.Definition, mapper *TypeMapper) ([]templates.ConstantData, error) {
	constants := make([]templates.ConstantData, 0, len(def.Constants))
	names := make(map[string]bool)

	for _, constant := range def.Constants {
		if names[constant.Name] {
			return nil, fmt.Errorf("constant %s declared twice", constant.Name)
		}
		names[constant.Name] = true

		goType, err := mapper.GoType(constant.Type)
		if err != nil {
			return nil, fmt.Errorf("constant %s: %w", constant.Name, err)
		}

		value, err := constantLiteral(constant)
		if err != nil {
			return nil, fmt.Errorf("constant %s: %w", constant.Name, err)
		}

		constants = append(constants, templates.ConstantData{
			Name:   constant.Name,
			GoType: goType,
			Value:  value,
		})
	}
	return constants, nil
}

// constantLiteral validates a constant value against its type and renders it as Go
func constantLiteral(c parser.Constant) (string, error) {
	switch c.Type.Name {
	case "string":
		return strconv.Quote(c.Value), nil
	case "bool":
		b, err := strconv.ParseBool(c.Value)
		if err != nil {
			return "", fmt.Errorf("invalid bool value %q", c.Value)
		}
		return strconv.FormatBool(b), nil
	case "float32", "float64":
		bits := 64
		if c.Type.Name == "float32" {
			bits = 32
		}
		if _, err := strconv.ParseFloat(c.Value, bits); err != nil {
			return "", fmt.Errorf("invalid %s value %q", c.Type.Name, c.Value)
		}
		return c.Value, nil
	case "int8", "byte", "int16", "int32", "int64":
		if _, err := strconv.ParseInt(c.Value, 10, intBits(c.Type.Name)); err != nil {
			return "", fmt.Errorf("invalid %s value %q", c.Type.Name, c.Value)
		}
		return c.Value, nil
	case "uint8", "char", "uint16", "uint32", "uint64":
		if _, err := strconv.ParseUint(c.Value, 10, intBits(c.Type.Name)); err != nil {
			return "", fmt.Errorf("invalid %s value %q", c.Type.Name, c.Value)
		}
		return c.Value, nil
	default:
		return "", fmt.Errorf("unsupported constant type %s", c.Type.Name)
	}
}

func intBits(name string) int {
	switch name {
	case "int8", "uint8", "byte", "char":
		return 8
	case "int16", "uint16":
		return 16
	case "int32", "uint32":
		return 32
	default:
		return 64
	}
}
