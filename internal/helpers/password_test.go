package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashPassword(t *testing.T) {
	hasher := BcryptHasher{}

	hash, err := hasher.HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, "secret", hash)
	assert.True(t, CheckPassword(hash, "secret"))
	assert.False(t, CheckPassword(hash, "not-secret"))

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_SaltsEachHash(t *testing.T) {
	hasher := BcryptHasher{}

	a, err := hasher.HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)
	b, err := hasher.HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestBcryptHasher_InvalidCost(t *testing.T) {
	_, err := BcryptHasher{}.HashPassword("secret", bcrypt.MaxCost+1)
	assert.Error(t, err)
}
