package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitRole(t *testing.T) {
	assert.Equal(t, "message", RoleMessage.String())
	assert.Equal(t, "service", RoleServiceContainer.String())
	assert.Equal(t, "service request", RoleServiceRequest.String())
	assert.Equal(t, "service response", RoleServiceResponse.String())

	assert.True(t, RoleMessage.IsMessage())
	assert.True(t, RoleServiceRequest.IsMessage())
	assert.True(t, RoleServiceResponse.IsMessage())
	assert.False(t, RoleServiceContainer.IsMessage())
}

func TestGenerationSummary(t *testing.T) {
	summary := NewGenerationSummary()
	assert.NotNil(t, summary.Failures)
	assert.NotNil(t, summary.GeneratedFiles)
	assert.Empty(t, summary.FailedTypes())

	summary.Failures = append(summary.Failures,
		UnitFailure{Type: "demo/Broken", Role: RoleMessage, Err: errors.New("missing")},
		UnitFailure{Type: "demo/AddRequest", Role: RoleServiceRequest, Err: errors.New("malformed")},
	)

	assert.Equal(t, []string{"demo/Broken", "demo/AddRequest"}, summary.FailedTypes())
}
