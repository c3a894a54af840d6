package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	digest, err := Hash("secret123")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.NotEqual(t, "secret123", digest)

	assert.True(t, Verify(digest, "secret123"))
	assert.False(t, Verify(digest, "wrong"))
}

func TestHashIsSalted(t *testing.T) {
	a, err := Hash("secret123")
	require.NoError(t, err)
	b, err := Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestVerifyGarbageDigest(t *testing.T) {
	assert.False(t, Verify("not-a-digest", "secret123"))
}
