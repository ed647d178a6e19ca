package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/errors"
	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/models"
)

func TestParseDefinition_Fields(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []Field
	}{
		{
			name: "primitive fields",
			text: "float64 x\nfloat64 y\n",
			expected: []Field{
				{Type: TypeRef{Name: "float64"}, Name: "x", Line: 1},
				{Type: TypeRef{Name: "float64"}, Name: "y", Line: 2},
			},
		},
		{
			name: "qualified and unqualified compounds",
			text: "geometry_msgs/Point position\nPose pose\n",
			expected: []Field{
				{Type: TypeRef{Package: "geometry_msgs", Name: "Point"}, Name: "position", Line: 1},
				{Type: TypeRef{Name: "Pose"}, Name: "pose", Line: 2},
			},
		},
		{
			name: "variable and fixed arrays",
			text: "uint8[] data\nfloat64[9] covariance\nPoint[] points\n",
			expected: []Field{
				{Type: TypeRef{Name: "uint8", IsArray: true}, Name: "data", Line: 1},
				{Type: TypeRef{Name: "float64", IsArray: true, ArrayLen: 9}, Name: "covariance", Line: 2},
				{Type: TypeRef{Name: "Point", IsArray: true}, Name: "points", Line: 3},
			},
		},
		{
			name: "comments blank lines and trailing comments",
			text: "# leading comment\n\n  int32 count   # how many\n\t\n",
			expected: []Field{
				{Type: TypeRef{Name: "int32"}, Name: "count", Line: 3},
			},
		},
		{
			name: "windows line endings",
			text: "bool ok\r\nstring msg\r\n",
			expected: []Field{
				{Type: TypeRef{Name: "bool"}, Name: "ok", Line: 1},
				{Type: TypeRef{Name: "string"}, Name: "msg", Line: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := ParseDefinition(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, def.Fields)
			assert.Empty(t, def.Constants)
		})
	}
}

func TestParseDefinition_Constants(t *testing.T) {
	text := "int32 MAX=10 # upper bound\n" +
		"string GREETING=hello # not a comment\n" +
		"uint8 MODE = 3\n" +
		"int32 value\n"

	def, err := ParseDefinition(text)
	require.NoError(t, err)

	require.Len(t, def.Constants, 3)
	assert.Equal(t, Constant{Type: TypeRef{Name: "int32"}, Name: "MAX", Value: "10", Line: 1}, def.Constants[0])
	assert.Equal(t, "hello # not a comment", def.Constants[1].Value)
	assert.Equal(t, "MODE", def.Constants[2].Name)
	assert.Equal(t, "3", def.Constants[2].Value)

	require.Len(t, def.Fields, 1)
	assert.Equal(t, "value", def.Fields[0].Name)
}

func TestParseDefinition_EqualsInsideComment(t *testing.T) {
	def, err := ParseDefinition("int32 x # x=1 is the default\n")
	require.NoError(t, err)
	assert.Empty(t, def.Constants)
	require.Len(t, def.Fields, 1)
	assert.Equal(t, "x", def.Fields[0].Name)
}

func TestParseDefinition_Malformed(t *testing.T) {
	tests := []struct {
		name string
		text string
		line int
	}{
		{name: "missing field name", text: "int32 ok\nfloat64\n", line: 2},
		{name: "too many tokens", text: "int32 a b\n", line: 1},
		{name: "bad array length", text: "\nint32[x] a\n", line: 2},
		{name: "compound constant", text: "Point ORIGIN=0\n", line: 1},
		{name: "array constant", text: "int32[] VALUES=1\n", line: 1},
		{name: "constant without value", text: "int32 EMPTY=\n", line: 1},
		{name: "service separator in a message", text: "int32 a\n---\nint32 b\n", line: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDefinition(tt.text)
			require.Error(t, err)

			var malformed *errors.MalformedDefinitionError
			require.True(t, errors.As(err, &malformed))
			assert.Equal(t, tt.line, malformed.Line)
			assert.Equal(t, errors.MalformedDefinitionErrorCode, errors.CodeOf(err))
		})
	}
}

func TestParseServiceDefinition_SkipsSeparators(t *testing.T) {
	def, err := ParseServiceDefinition("int32 a\n  ---  \nint32 b\n")
	require.NoError(t, err)
	assert.Equal(t, []Field{
		{Type: TypeRef{Name: "int32"}, Name: "a", Line: 1},
		{Type: TypeRef{Name: "int32"}, Name: "b", Line: 3},
	}, def.Fields)

	_, err = ParseServiceDefinition("int32 a\n---\nfloat64\n")
	var malformed *errors.MalformedDefinitionError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, 3, malformed.Line)
}

func TestDefinition_References(t *testing.T) {
	def, err := ParseDefinition("Header header\nPoint a\ngeometry_msgs/Point b\nPoint[] more\nint32 n\n")
	require.NoError(t, err)

	refs := def.References("nav_msgs")
	assert.Equal(t, []models.TypeIdentifier{
		models.NewTypeIdentifier("std_msgs", "Header"),
		models.NewTypeIdentifier("nav_msgs", "Point"),
		models.NewTypeIdentifier("geometry_msgs", "Point"),
	}, refs)
}

func TestTypeRef_Resolve(t *testing.T) {
	assert.Equal(t, "pkg/Foo", TypeRef{Name: "Foo"}.Resolve("pkg").FullName())
	assert.Equal(t, "other/Foo", TypeRef{Package: "other", Name: "Foo"}.Resolve("pkg").FullName())
	assert.Equal(t, "std_msgs/Header", TypeRef{Name: "Header"}.Resolve("pkg").FullName())
	assert.Equal(t, "other/Header", TypeRef{Package: "other", Name: "Header"}.Resolve("pkg").FullName())
}

func TestTypeRef_IsPrimitive(t *testing.T) {
	assert.True(t, TypeRef{Name: "duration"}.IsPrimitive())
	assert.True(t, TypeRef{Name: "uint8", IsArray: true}.IsPrimitive())
	assert.False(t, TypeRef{Name: "Header"}.IsPrimitive())
	assert.False(t, TypeRef{Package: "pkg", Name: "int32"}.IsPrimitive())
}
