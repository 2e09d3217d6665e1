package secrets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "campusconnect/pkg/domain-errors"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("password123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "password123", hash)

	assert.NoError(t, Verify("password123", hash))
	assert.Error(t, Verify("wrong-password", hash))
}

func TestHashRejectsEmptySecret(t *testing.T) {
	_, err := Hash("")
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeInvalidInput))
}

func TestHashesAreSalted(t *testing.T) {
	first, err := Hash("password123")
	require.NoError(t, err)
	second, err := Hash("password123")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
