package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the already-authenticated subject a token is issued for.
// The token service performs no authorization logic, only encoding.
type Identity struct {
	ID       int64
	Username string
	Name     string
	LastName string
	Role     string
	Status   string
}

// Claims defines the custom claims embedded in issued tokens.
type Claims struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Role     string `json:"role"`
	Status   string `json:"status"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer
// tokens. Tokens are self-contained and stateless; no server-side session
// store exists.
type TokenService interface {
	// Generate encodes the identity into a signed, time-limited token.
	Generate(identity Identity) (string, error)

	// Validate checks a token's signature, expiry, issuer and audience,
	// returning the embedded claims.
	Validate(tokenString string) (*Claims, error)
}
