package templates

import (
	"strconv"
	"strings"
	"unicode"
)

// ToPascalCase converts a snake_case definition name to an exported Go name
func ToPascalCase(s string) string {
	var b strings.Builder
	for _, part := range strings.Split(s, "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	if b.Len() == 0 {
		return "X"
	}
	return b.String()
}

// ToPackageName turns a definition package name into a valid Go package name
func ToPackageName(pkg string) string {
	var b strings.Builder
	for i, r := range pkg {
		switch {
		case r == '_' || unicode.IsLetter(r):
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsDigit(r) && i > 0:
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// GoStringLiteral renders text as a raw string literal when it can be one,
// and as an interpreted literal otherwise
func GoStringLiteral(text string) string {
	if strings.ContainsAny(text, "`\r") {
		return strconv.Quote(text)
	}
	return "`" + text + "`"
}
