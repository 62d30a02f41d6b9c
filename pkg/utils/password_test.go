package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("wrongpass", hash))
}

func TestValidateStructReportsMissingFields(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
		Name  string `validate:"required"`
	}

	errs := ValidateStruct(&payload{Email: "not-an-email"})
	require.Len(t, errs, 2)
	assert.Equal(t, "Invalid email format", errs["Email"])
	assert.Equal(t, "This field is required", errs["Name"])
}

func TestValidateStructPasses(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
	}

	errs := ValidateStruct(&payload{Email: "user@example.com"})
	assert.Nil(t, errs)
}
