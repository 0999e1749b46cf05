package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"ubishop/config"
)

func TestBcryptHasher_PlainTextByDefault(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{}})

	stored, err := hasher.Hash("  secreto  ")
	require.NoError(t, err)
	assert.Equal(t, "secreto", stored)

	assert.True(t, hasher.Check("secreto", stored))
	assert.True(t, hasher.Check(" secreto\n", stored))
	assert.False(t, hasher.Check("Secreto", stored))
	assert.False(t, hasher.Check("", stored))
}

func TestBcryptHasher_HashOnWrite(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{HashPasswords: true, BcryptCost: bcrypt.MinCost}})

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)
	assert.NotEqual(t, "StrongPass123!", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	assert.True(t, hasher.Check("StrongPass123!", hash))
	assert.True(t, hasher.Check(" StrongPass123! ", hash))
	assert.False(t, hasher.Check("WrongPassword123!", hash))
}

func TestBcryptHasher_CheckStoredHashWhenHashingDisabled(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("legacy"), bcrypt.MinCost)
	require.NoError(t, err)

	hasher := NewBcryptHasher(&config.Config{})
	assert.True(t, hasher.Check("legacy", string(hash)))
	assert.False(t, hasher.Check(string(hash), string(hash)))
}

func TestBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	h := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{HashPasswords: true, BcryptCost: 99}}).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
}
