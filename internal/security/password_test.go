package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifySecret(t *testing.T) {
	secret := CombineSecret("p@ss", "a@x.com", "E1A")

	hash, err := HashSecret(secret, bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotContains(t, hash, "p@ss")

	ok, err := VerifySecret(secret, hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifySecretMismatch(t *testing.T) {
	hash, err := HashSecret(CombineSecret("p@ss", "a@x.com", "E1A"), bcrypt.MinCost)
	require.NoError(t, err)

	for _, secret := range []string{
		CombineSecret("wrong", "a@x.com", "E1A"),
		CombineSecret("p@ss", "b@x.com", "E1A"),
		CombineSecret("p@ss", "a@x.com", "E2B"),
	} {
		ok, err := VerifySecret(secret, hash)
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestVerifySecretMalformedHash(t *testing.T) {
	_, err := VerifySecret("anything", "not-a-bcrypt-hash")
	assert.Error(t, err)
}

func TestCombineSecretUsesAllInputs(t *testing.T) {
	// The stored hash must never derive from the password alone.
	base := CombineSecret("p@ss", "a@x.com", "E1A")
	assert.NotEqual(t, base, CombineSecret("p@ss", "b@x.com", "E1A"))
	assert.NotEqual(t, base, CombineSecret("p@ss", "a@x.com", "E2B"))
	assert.Equal(t, "p@ssa@x.comE1A", base)
}

func TestHashSecretDefaultCost(t *testing.T) {
	hash, err := HashSecret("secret", 0)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, DefaultCost, cost)
}
