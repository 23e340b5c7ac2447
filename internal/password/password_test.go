package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashRoundTrip(t *testing.T) {
	hash, err := Hash("Correct horse battery staple1")
	require.NoError(t, err)
	assert.NotEqual(t, "Correct horse battery staple1", hash)
	assert.True(t, Verify("Correct horse battery staple1", hash))
	assert.False(t, Verify("wrong password", hash))
}

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("SamePlaintext1")
	require.NoError(t, err)
	second, err := Hash("SamePlaintext1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, Verify("SamePlaintext1", first))
	assert.True(t, Verify("SamePlaintext1", second))
}

func TestVerifyMalformedHash(t *testing.T) {
	assert.False(t, Verify("anything", ""))
	assert.False(t, Verify("anything", "not-a-bcrypt-hash"))
	assert.False(t, Verify("", "$2a$10$truncated"))
}
