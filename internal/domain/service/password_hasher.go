// Package service defines the domain service contracts implemented under
// internal/infra.
package service

// PasswordHasher provides one-way password hashing and verification.
// Implementations must be safe for concurrent use.
type PasswordHasher interface {
	// Hash generates a salted one-way hash of the plaintext. It fails only
	// on malformed input (e.g. an empty string).
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash. It never
	// returns an error: a mismatch, like a malformed hash, is just false.
	Check(password, hash string) bool
}
