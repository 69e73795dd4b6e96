// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing scheme, keeping the domain pure.
//
// The default scheme is an unsalted SHA-256 digest: deterministic, so equal
// plaintexts always produce equal digests and login can compare digests for
// exact equality. That determinism is a known security weakness; the bcrypt
// scheme can be selected via configuration instead (see config.AuthConfig).
type PasswordHasher interface {
	// Hash generates a digest from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored digest.
	Check(password, digest string) bool
}
