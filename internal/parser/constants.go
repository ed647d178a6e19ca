package parser

const (
	// CommentChar starts a comment that runs to the end of the line
	CommentChar = "#"

	// ConstantChar separates a constant's name from its value
	ConstantChar = "="

	// ServiceSeparator divides a service definition into request and response
	ServiceSeparator = "---"

	// MarkerLine precedes every dependency block appended to a closure
	MarkerLine = "================================================================================"

	// MarkerPrefix starts the line naming the type defined by the following block
	MarkerPrefix = "MSG: "

	// HeaderType is the built-in compound type that may be referenced without a package
	HeaderType = "Header"

	// HeaderPackage is the package HeaderType implicitly belongs to
	HeaderPackage = "std_msgs"
)

// primitiveTypes lists the field types that never reference another definition
var primitiveTypes = map[string]bool{
	"bool":     true,
	"byte":     true,
	"char":     true,
	"int8":     true,
	"uint8":    true,
	"int16":    true,
	"uint16":   true,
	"int32":    true,
	"uint32":   true,
	"int64":    true,
	"uint64":   true,
	"float32":  true,
	"float64":  true,
	"string":   true,
	"time":     true,
	"duration": true,
}

// builtinCompounds maps unqualified compound names to their implicit package
var builtinCompounds = map[string]string{
	HeaderType: HeaderPackage,
}

// IsPrimitive reports whether name is a primitive field type
func IsPrimitive(name string) bool {
	return primitiveTypes[name]
}
