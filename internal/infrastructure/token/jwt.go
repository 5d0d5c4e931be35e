package token

import (
	"fmt"
	"time"

	"motoshop/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// JWTManager issues and verifies HS256 session tokens.
// Implements domain.TokenIssuer and domain.TokenVerifier.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTManager creates a new JWT manager.
func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	return &JWTManager{secret: []byte(secret), ttl: ttl}
}

// Issue signs the identity claim into a session token with a fixed lifetime.
// The claim is carried through as-is; only iat and exp are added.
func (m *JWTManager) Issue(claims domain.Claims) (string, error) {
	now := time.Now()
	mapClaims := jwt.MapClaims{}
	for k, v := range claims {
		mapClaims[k] = v
	}
	mapClaims["iat"] = now.Unix()
	mapClaims["exp"] = now.Add(m.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrTokenGeneration, err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the embedded claim.
// Bad signature and elapsed expiry both map to ErrInvalidCredential; the
// caller must not be able to tell which check failed.
func (m *JWTManager) Verify(tokenStr string) (domain.Claims, error) {
	parsed, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCredential, err)
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, domain.ErrInvalidCredential
	}
	return domain.Claims(mapClaims), nil
}
