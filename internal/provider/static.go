package provider

import "github.com/CentralLabFacilities/rosjava-bootstrap/internal/parser"

// headerDefinition is the standard std_msgs/Header message
const headerDefinition = "uint32 seq\ntime stamp\nstring frame_id\n"

// Static is an in-memory provider
type Static map[string]string

// Lookup implements Provider
func (s Static) Lookup(fullName string) (string, bool) {
	text, ok := s[fullName]
	return text, ok
}

// Builtins returns the definitions that exist even when no workspace provides them
func Builtins() Static {
	return Static{
		parser.HeaderPackage + "/" + parser.HeaderType: headerDefinition,
	}
}
