package utils

import (
	"fmt"

	"golang.org/x/tools/imports"
)

// FormatGoSource gofmts source and tidies its import block the way goimports does.
// filename only decides which local imports are grouped; it need not exist.
func FormatGoSource(filename string, source []byte) ([]byte, error) {
	formatted, err := imports.Process(filename, source, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to format generated source %s: %w", filename, err)
	}
	return formatted, nil
}
