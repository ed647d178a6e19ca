package parser

import "strings"

// Block is one dependency definition appended to a closure
type Block struct {
	Type string // full type name from the marker
	Text string
}

// AppendBlock appends a marker naming fullName followed by text
func AppendBlock(b *strings.Builder, fullName, text string) {
	if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
		b.WriteString("\n")
	}
	b.WriteString(MarkerLine)
	b.WriteString("\n")
	b.WriteString(MarkerPrefix)
	b.WriteString(fullName)
	b.WriteString("\n")
	b.WriteString(text)
}

// SplitClosure separates a closure into its own text and the dependency
// blocks in the order they were appended
func SplitClosure(text string) (own string, blocks []Block) {
	lines := strings.SplitAfter(text, "\n")

	var current strings.Builder
	var currentType string
	inBlock := false

	flush := func() {
		if inBlock {
			blocks = append(blocks, Block{Type: currentType, Text: current.String()})
		} else {
			own = current.String()
		}
		current.Reset()
	}

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if strings.TrimRight(line, "\r\n") == MarkerLine && i+1 < len(lines) &&
			strings.HasPrefix(lines[i+1], MarkerPrefix) {
			flush()
			inBlock = true
			currentType = strings.TrimSpace(strings.TrimPrefix(lines[i+1], MarkerPrefix))
			i++
			continue
		}
		current.WriteString(line)
	}
	flush()

	return own, blocks
}
