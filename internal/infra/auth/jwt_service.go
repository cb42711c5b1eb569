// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"sphere/config"
	"sphere/internal/domain/service"
)

// defaultTokenTTL applies when the configuration does not set a lifetime.
const defaultTokenTTL = 60 * time.Minute

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// The signing secret is read once at construction and never mutated, so the
// service is safe to share across concurrent requests.
type jwtService struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := cfg.JWT.TTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &jwtService{
		secret:   []byte(cfg.JWT.Secret),
		issuer:   cfg.JWT.Issuer,
		audience: cfg.JWT.Audience,
		ttl:      ttl,
	}, nil
}

// Generate creates a signed HS256 token for an already-authenticated identity.
func (s *jwtService) Generate(identity service.Identity) (string, error) {
	now := time.Now()

	claims := &service.Claims{
		Username: identity.Username,
		Name:     identity.Name,
		LastName: identity.LastName,
		Role:     identity.Role,
		Status:   identity.Status,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(identity.ID, 10),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate checks the signature, expiry, issuer and audience of a token
// string and returns the embedded claims.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Reject anything but the HMAC family; "none" and asymmetric
		// algorithms must not validate against the shared secret.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	return claims, nil
}
