package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusPayload struct {
	Status string `json:"status" validate:"required,is-order-status"`
}

func TestValidateOrderStatusTag(t *testing.T) {
	v := New()

	for _, status := range []string{"preparing", "completed", "cancelled", "partially completed"} {
		assert.NoError(t, v.Validate(&statusPayload{Status: status}), status)
	}

	err := v.Validate(&statusPayload{Status: "shipped"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "status")
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()

	type payload struct {
		EmailAddress string `json:"email" validate:"required,email"`
	}

	err := v.Validate(&payload{EmailAddress: "not-an-email"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	// The JSON tag name, not the Go field name.
	assert.Contains(t, vErr.Errors, "email")
	assert.NotContains(t, vErr.Errors, "EmailAddress")
}
