package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/errors"
)

func TestSplitService(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		request  string
		response string
	}{
		{name: "both halves", text: "field1\n---\nfield2", request: "field1\n", response: "field2"},
		{name: "empty request", text: "---\nint32 sum\n", request: "", response: "int32 sum\n"},
		{name: "empty response", text: "int32 a\n---\n", request: "int32 a\n", response: ""},
		{name: "separator with whitespace", text: "int32 a\n  ---  \nint32 b\n", request: "int32 a\n", response: "int32 b\n"},
		{name: "no separator", text: "int32 a\nint32 b\n", request: "int32 a\nint32 b\n", response: ""},
		{name: "dashes inside a line are not a separator", text: "string s # ---\n---\n", request: "string s # ---\n", response: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request, response, err := SplitService(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.request, request)
			assert.Equal(t, tt.response, response)
		})
	}
}

func TestSplitService_MultipleSeparators(t *testing.T) {
	_, _, err := SplitService("int32 a\n---\nint32 b\n---\nint32 c\n")
	require.Error(t, err)

	var malformed *errors.MalformedDefinitionError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, 4, malformed.Line)
}
