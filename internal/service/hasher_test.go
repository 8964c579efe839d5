package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher_SaltVaries(t *testing.T) {
	hasher := NewPasswordHasher(4)

	first, err := hasher.Hash("secretpw")
	require.NoError(t, err)
	second, err := hasher.Hash("secretpw")
	require.NoError(t, err)

	// bcrypt salts per call, so identical inputs yield distinct digests
	// that both still verify
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("secretpw", first))
	assert.True(t, hasher.Verify("secretpw", second))
}

func TestPasswordHasher_Verify(t *testing.T) {
	hasher := NewPasswordHasher(4)

	digest, err := hasher.Hash("secretpw")
	require.NoError(t, err)

	assert.True(t, hasher.Verify("secretpw", digest))
	assert.False(t, hasher.Verify("wrongpw", digest))
}

func TestPasswordHasher_MalformedDigest(t *testing.T) {
	hasher := NewPasswordHasher(4)

	// A malformed digest is a mismatch, not a panic
	assert.False(t, hasher.Verify("secretpw", ""))
	assert.False(t, hasher.Verify("secretpw", "not-a-bcrypt-digest"))
}

func TestNewPasswordHasher_CostClamped(t *testing.T) {
	// Out-of-range costs fall back to the bcrypt default
	hasher := NewPasswordHasher(99)
	digest, err := hasher.Hash("secretpw")
	require.NoError(t, err)
	assert.True(t, hasher.Verify("secretpw", digest))
}
