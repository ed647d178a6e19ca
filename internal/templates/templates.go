package templates

import (
	"bytes"
	"fmt"
	"strconv"
	"text/template"
)

// FieldData describes one accessor pair of a message interface
type FieldData struct {
	Name     string // name as written in the definition
	Accessor string // exported Go name used after Get and Set
	GoType   string
}

// ConstantData describes one constant declared by a message
type ConstantData struct {
	Name   string
	GoType string
	Value  string // Go literal
}

// InterfaceData is the data for the message and service templates
type InterfaceData struct {
	Package    string // Go package clause
	Imports    string // rendered import block, may be empty
	Name       string
	FullName   string
	Definition string
	Constants  []ConstantData
	Fields     []FieldData
}

// funcMap holds the functions available to every template
var funcMap = template.FuncMap{
	"quote":   strconv.Quote,
	"literal": GoStringLiteral,
}

// ExecuteTemplate renders the registered template name with data
func (tr *TemplateRegistry) ExecuteTemplate(name string, data interface{}) (string, error) {
	if _, ok := tr.templates[name]; !ok {
		return "", fmt.Errorf("template not found: %s", name)
	}

	root := template.New(name).Funcs(funcMap)
	for tmplName, text := range tr.templates {
		var err error
		if tmplName == name {
			_, err = root.Parse(text)
		} else {
			_, err = root.New(tmplName).Parse(text)
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse template %s: %w", tmplName, err)
		}
	}

	var buf bytes.Buffer
	if err := root.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.String(), nil
}

// ExecuteTemplate renders a template of the default registry
func ExecuteTemplate(name string, data interface{}) (string, error) {
	return DefaultTemplateRegistry.ExecuteTemplate(name, data)
}
