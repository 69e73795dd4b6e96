package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestSHA256Hasher_Hash(t *testing.T) {
	hasher := NewSHA256Hasher()

	hash, err := hasher.Hash("hunter2")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "hunter2", hash)

	// Known digest of "hunter2"
	assert.Equal(t, "f52fbd32b2b3b86ff88ef6c490628285f482af15ddcb29541f94bcf526a3f6c7", hash)
}

func TestSHA256Hasher_Deterministic(t *testing.T) {
	hasher := NewSHA256Hasher()

	first, err := hasher.Hash("same-password")
	assert.NoError(t, err)
	second, err := hasher.Hash("same-password")
	assert.NoError(t, err)

	// Unsalted digest: equal inputs always produce equal outputs.
	assert.Equal(t, first, second)
}

func TestSHA256Hasher_Check(t *testing.T) {
	hasher := NewSHA256Hasher()

	hash, err := hasher.Hash("hunter2")
	assert.NoError(t, err)

	assert.True(t, hasher.Check("hunter2", hash))
	assert.False(t, hasher.Check("hunter3", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("hunter2", "not-a-digest"))
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("hunter2")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "hunter2", hash)

	assert.True(t, hasher.Check("hunter2", hash))
	assert.False(t, hasher.Check("hunter3", hash))
	assert.False(t, hasher.Check("hunter2", "invalid_hash"))
}

func TestBcryptHasher_CostFallback(t *testing.T) {
	hasher := NewBcryptHasher(-1)

	hash, err := hasher.Hash("hunter2")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestNewPasswordHasher_SchemeSelection(t *testing.T) {
	sha := NewPasswordHasher("sha256", 0)
	first, err := sha.Hash("pw")
	assert.NoError(t, err)
	second, err := sha.Hash("pw")
	assert.NoError(t, err)
	assert.Equal(t, first, second)

	bc := NewPasswordHasher("bcrypt", bcrypt.MinCost)
	hash, err := bc.Hash("pw")
	assert.NoError(t, err)
	assert.True(t, bc.Check("pw", hash))

	// Unknown schemes fall back to the legacy digest.
	fallback := NewPasswordHasher("argon2", 0)
	hash, err = fallback.Hash("pw")
	assert.NoError(t, err)
	assert.Equal(t, first, hash)
}
