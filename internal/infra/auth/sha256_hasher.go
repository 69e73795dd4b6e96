package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"ledger/internal/domain/service"
)

// sha256Hasher is a concrete implementation of the PasswordHasher interface
// using an unsalted SHA-256 hex digest. The digest is deterministic: hashing
// the same password twice yields the same string, and Check is a plain digest
// comparison. Stored credentials predate salting, so changing this scheme
// would invalidate every existing account.
type sha256Hasher struct{}

// NewSHA256Hasher is the constructor for sha256Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewSHA256Hasher() service.PasswordHasher {
	return &sha256Hasher{}
}

// Hash returns the lowercase hex SHA-256 digest of the plaintext password.
func (h *sha256Hasher) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))

	return hex.EncodeToString(sum[:]), nil
}

// Check compares a plaintext password with a stored digest.
func (h *sha256Hasher) Check(password, digest string) bool {
	sum := sha256.Sum256([]byte(password))
	computed := hex.EncodeToString(sum[:])

	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}
