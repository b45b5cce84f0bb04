package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registration struct {
	Username string `validate:"required,max=64"`
	Password string `validate:"required,max=72"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid struct passes", func(t *testing.T) {
		err := ValidateStruct(registration{Username: "alice", Password: "pw1"})
		assert.NoError(t, err)
	})

	t.Run("short password passes", func(t *testing.T) {
		err := ValidateStruct(registration{Username: "alice", Password: "x"})
		assert.NoError(t, err)
	})

	t.Run("missing required fields", func(t *testing.T) {
		err := ValidateStruct(registration{})
		require.Error(t, err)
		require.True(t, IsValidationError(err))

		fields := GetValidationFields(err)
		assert.Contains(t, fields, "Username")
		assert.Contains(t, fields, "Password")
		assert.Equal(t, "Username is required", fields["Username"])
	})

	t.Run("max tag produces readable message", func(t *testing.T) {
		long := make([]byte, 80)
		for i := range long {
			long[i] = 'a'
		}
		err := ValidateStruct(registration{Username: "alice", Password: string(long)})
		require.Error(t, err)

		fields := GetValidationFields(err)
		assert.Equal(t, "Password must be at most 72", fields["Password"])
	})
}

func TestIsValidationError(t *testing.T) {
	assert.False(t, IsValidationError(errors.New("plain")))
	assert.Nil(t, GetValidationFields(errors.New("plain")))
}
