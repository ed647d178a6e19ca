package parser

import (
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// declaration is the "<type> <name>" part shared by fields and constants
type declaration struct {
	Type  []string   `parser:"@Ident ( '/' @Ident )?"`
	Array *arraySpec `parser:"@@?"`
	Name  string     `parser:"@Ident"`
}

// arraySpec is "[]" or "[N]"
type arraySpec struct {
	Open string `parser:"@'['"`
	Size string `parser:"@Int? ']'"`
}

// GrammarParser parses single declaration lines using alecthomas/participle
type GrammarParser struct {
	parser *participle.Parser[declaration]
}

// NewGrammarParser creates a declaration parser
func NewGrammarParser() *GrammarParser {
	lex := lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Int", Pattern: `[0-9]+`},
		{Name: "Punct", Pattern: `[/\[\]]`},
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
	})

	parser := participle.MustBuild[declaration](
		participle.Lexer(lex),
		participle.Elide("Whitespace"),
	)

	return &GrammarParser{parser: parser}
}

// ParseDeclaration parses "<type>[<array>] <name>" into a type and a name
func (g *GrammarParser) ParseDeclaration(text string) (TypeRef, string, error) {
	decl, err := g.parser.ParseString("", text)
	if err != nil {
		return TypeRef{}, "", err
	}

	var ref TypeRef
	if len(decl.Type) == 2 {
		ref.Package = decl.Type[0]
		ref.Name = decl.Type[1]
	} else {
		ref.Name = decl.Type[0]
	}

	if decl.Array != nil {
		ref.IsArray = true
		if decl.Array.Size != "" {
			size, err := strconv.Atoi(decl.Array.Size)
			if err != nil {
				return TypeRef{}, "", err
			}
			ref.ArrayLen = size
		}
	}

	return ref, decl.Name, nil
}
