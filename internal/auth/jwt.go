package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/Dhoini/invoice-dashboard/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims are the claims carried by a session token.
type TokenClaims struct {
	UserEmail string `json:"email"`
	UserName  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and validates session tokens. Together with the
// verifier it forms the explicitly wired auth capabilities: sign-in issues
// a token, sign-out discards it client-side, session resolution validates it.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service with the given signing secret and
// token lifetime.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs a session token for the authenticated user.
func (s *TokenService) Issue(user domain.PublicUser) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		UserEmail: user.Email,
		UserName:  user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Validate parses a session token and returns its claims.
func (s *TokenService) Validate(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid session token claims")
	}
	return claims, nil
}
