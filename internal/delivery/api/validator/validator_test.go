package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Pincode *string `validate:"omitempty,numeric,len=6"`
	Email   *string `validate:"omitempty,email"`
}

func TestRequestValidator_Validate(t *testing.T) {
	v := New()

	good := "411038"
	require.NoError(t, v.Validate(&sampleRequest{Pincode: &good}))
	require.NoError(t, v.Validate(&sampleRequest{}))

	bad := "41100"
	notEmail := "nope"
	err := v.Validate(&sampleRequest{Pincode: &bad, Email: &notEmail})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Pincode failed 'len=6'")
	assert.Contains(t, err.Error(), "Email failed 'email'")
}
