package service

import (
	"errors"
	"testing"
	"time"

	"github.com/martialverse/booking-api/internal/core/domain"
	"github.com/martialverse/booking-api/internal/core/ports"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(ports.Claims{Email: "a@x.com"})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.Email != "a@x.com" {
		t.Fatalf("expected email a@x.com, got %s", claims.Email)
	}
}

func TestTokenService_Expired(t *testing.T) {
	// Built directly: the constructor would normalize a non-positive TTL,
	// and an already-expired token is exactly what this test needs.
	svc := &TokenService{secret: "secret", tokenTTL: -time.Minute}

	token, err := svc.Issue(ports.Claims{Email: "a@x.com"})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue(ports.Claims{Email: "a@x.com"})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_Garbage(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	if _, err := svc.Verify("not-a-token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_DefaultTTL(t *testing.T) {
	for _, ttl := range []time.Duration{0, -time.Minute} {
		svc := NewTokenService("secret", ttl)
		if svc.tokenTTL != DefaultTokenTTL {
			t.Fatalf("ttl %v: expected default TTL, got %v", ttl, svc.tokenTTL)
		}
	}
}
