package secret

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("mypassword")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "mypassword", hash)

	assert.True(t, Verify(hash, "mypassword"))
	assert.False(t, Verify(hash, "wrong"))
	assert.False(t, Verify(hash, ""))
}

func TestEmptySecret(t *testing.T) {
	hash, err := Hash("")
	require.NoError(t, err)
	assert.Empty(t, hash)

	// No stored secret verifies only against an empty password
	assert.True(t, Verify("", ""))
	assert.False(t, Verify("", "anything"))
}

func TestHashIsSalted(t *testing.T) {
	h1, err := Hash("same")
	require.NoError(t, err)
	h2, err := Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, Verify(h1, "same"))
	assert.True(t, Verify(h2, "same"))
}
