package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/martialverse/booking-api/internal/core/domain"
	"github.com/martialverse/booking-api/internal/core/ports"
)

// DefaultTokenTTL matches the platform's long-lived session contract.
const DefaultTokenTTL = 300 * 24 * time.Hour

// TokenService signs and verifies HS256 bearer tokens carrying an email claim.
type TokenService struct {
	secret   string
	tokenTTL time.Duration
}

func NewTokenService(secret string, tokenTTL time.Duration) *TokenService {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &TokenService{secret: secret, tokenTTL: tokenTTL}
}

func (s *TokenService) Issue(claims ports.Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": claims.Email,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	})
	return t.SignedString([]byte(s.secret))
}

func (s *TokenService) Verify(token string) (*ports.Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return nil, domain.ErrInvalidToken
	}
	return &ports.Claims{Email: email}, nil
}
