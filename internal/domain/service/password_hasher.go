// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying key derivation, keeping the domain pure.
//
// Both operations degrade instead of failing: credential verification must
// not leak information through error paths, so malformed or empty input
// yields an empty hash or a false verdict, never an error.
type PasswordHasher interface {
	// Hash derives a verifiable salted hash from a plaintext password.
	// An empty plaintext returns the empty string; callers must reject
	// empty passwords before storing the result.
	Hash(password string) string

	// Verify compares a plaintext password with a previously produced
	// hash. Empty or malformed input returns false.
	Verify(password, encodedHash string) bool
}
