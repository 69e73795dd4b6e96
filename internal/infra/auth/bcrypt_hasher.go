package auth

import (
	"golang.org/x/crypto/bcrypt"

	"ledger/internal/domain/service"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface
// using bcrypt. Selected with auth.passwordScheme "bcrypt"; note that bcrypt
// digests are salted, so Hash is not deterministic across calls.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// A cost of zero (or any value outside bcrypt's range) falls back to the
// library default.
func NewBcryptHasher(cost int) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// NewPasswordHasher selects the hashing scheme by name.
func NewPasswordHasher(scheme string, bcryptCost int) service.PasswordHasher {
	if scheme == "bcrypt" {
		return NewBcryptHasher(bcryptCost)
	}

	return NewSHA256Hasher()
}
