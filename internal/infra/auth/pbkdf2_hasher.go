// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"

	"golang.org/x/crypto/pbkdf2"

	"sphere/internal/domain/service"
)

// Parameters of the key derivation. Stored hashes embed the salt, so these
// must not change without a migration of every stored credential.
const (
	saltLength = 16
	keyLength  = 20
	iterations = 10000
)

// pbkdf2Hasher is a concrete implementation of the PasswordHasher interface
// using salted PBKDF2 with an HMAC-SHA256 PRF. The encoded form is
// base64(salt || derived key).
type pbkdf2Hasher struct{}

// NewPBKDF2Hasher is the constructor for pbkdf2Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewPBKDF2Hasher() service.PasswordHasher {
	return &pbkdf2Hasher{}
}

// Hash derives a salted hash from a plaintext password. Each call draws a
// fresh random salt, so hashing the same plaintext twice yields different
// encodings; comparison goes through Verify, never through string equality.
func (h *pbkdf2Hasher) Hash(password string) string {
	if password == "" {
		return ""
	}

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		// crypto/rand only fails when the platform's entropy source is
		// broken; treat it like empty input rather than surfacing an error
		// from the credential path.
		return ""
	}

	key := pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha256.New)

	combined := make([]byte, 0, saltLength+keyLength)
	combined = append(combined, salt...)
	combined = append(combined, key...)

	return base64.StdEncoding.EncodeToString(combined)
}

// Verify re-derives a key from the plaintext and the salt embedded in the
// stored hash and compares it against the stored key in constant time.
// Malformed input of any kind returns false.
func (h *pbkdf2Hasher) Verify(password, encodedHash string) bool {
	if password == "" || encodedHash == "" {
		return false
	}

	combined, err := base64.StdEncoding.DecodeString(encodedHash)
	if err != nil || len(combined) != saltLength+keyLength {
		return false
	}

	salt := combined[:saltLength]
	stored := combined[saltLength:]

	derived := pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha256.New)

	return subtle.ConstantTimeCompare(derived, stored) == 1
}
