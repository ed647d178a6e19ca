package templates

// GeneratedHeader is the first line of every generated file
const GeneratedHeader = "// Code generated by geninterfaces. DO NOT EDIT."

// TemplateRegistry provides a centralized way to access all templates
type TemplateRegistry struct {
	templates map[string]string
}

// NewTemplateRegistry creates a new template registry with all templates
func NewTemplateRegistry() *TemplateRegistry {
	registry := &TemplateRegistry{
		templates: make(map[string]string),
	}

	registry.registerFileTemplates()
	registry.registerInterfaceTemplates()

	return registry
}

// Get retrieves a template by name
func (tr *TemplateRegistry) Get(name string) (string, bool) {
	template, exists := tr.templates[name]
	return template, exists
}

// MustGet retrieves a template by name, panics if not found
func (tr *TemplateRegistry) MustGet(name string) string {
	template, exists := tr.templates[name]
	if !exists {
		panic("template not found: " + name)
	}
	return template
}

// Names returns the registered template names
func (tr *TemplateRegistry) Names() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	return names
}

// registerFileTemplates registers the pieces every generated file shares
func (tr *TemplateRegistry) registerFileTemplates() {
	tr.templates["file-header"] = GeneratedHeader + `

package {{.Package}}
{{if .Imports}}
{{.Imports}}{{end}}`

	tr.templates["type-constants"] = `
const (
	// {{.Name}}Type is the full type name of {{.Name}}
	{{.Name}}Type = {{quote .FullName}}

	// {{.Name}}Definition is the definition of {{.Name}} followed by the
	// definition of every type it references
	{{.Name}}Definition = {{literal .Definition}}
)
`
}

// registerInterfaceTemplates registers the message and service templates
func (tr *TemplateRegistry) registerInterfaceTemplates() {
	tr.templates["message"] = `{{template "file-header" .}}{{template "type-constants" .}}{{if .Constants}}
const (
{{range .Constants}}	{{$.Name}}_{{.Name}} {{.GoType}} = {{.Value}}
{{end}})
{{end}}
// {{.Name}} is the {{.FullName}} message
type {{.Name}} interface {
{{range .Fields}}	Get{{.Accessor}}() {{.GoType}}
	Set{{.Accessor}}(value {{.GoType}})
{{end}}}
`

	tr.templates["service"] = `{{template "file-header" .}}{{template "type-constants" .}}
// {{.Name}} is the {{.FullName}} service
type {{.Name}} interface{}
`
}

// Global template registry instance
var DefaultTemplateRegistry = NewTemplateRegistry()
