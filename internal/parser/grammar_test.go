package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrammarParser_ParseDeclaration(t *testing.T) {
	g := NewGrammarParser()

	tests := []struct {
		text string
		ref  TypeRef
		name string
	}{
		{"int32 x", TypeRef{Name: "int32"}, "x"},
		{"geometry_msgs/Point position", TypeRef{Package: "geometry_msgs", Name: "Point"}, "position"},
		{"float64[] ranges", TypeRef{Name: "float64", IsArray: true}, "ranges"},
		{"float64[36] covariance", TypeRef{Name: "float64", IsArray: true, ArrayLen: 36}, "covariance"},
		{"geometry_msgs/Point[] points", TypeRef{Package: "geometry_msgs", Name: "Point", IsArray: true}, "points"},
		{"  Header\theader  ", TypeRef{Name: "Header"}, "header"},
		{"uint8 [4] quad", TypeRef{Name: "uint8", IsArray: true, ArrayLen: 4}, "quad"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			ref, name, err := g.ParseDeclaration(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.ref, ref)
			assert.Equal(t, tt.name, name)
		})
	}
}

func TestGrammarParser_Rejects(t *testing.T) {
	g := NewGrammarParser()

	for _, text := range []string{
		"int32",
		"int32[ x",
		"a/b/c x",
		"int32 x y",
		"int32[-1] x",
		"/Point p",
		"",
	} {
		_, _, err := g.ParseDeclaration(text)
		assert.Error(t, err, text)
	}
}
