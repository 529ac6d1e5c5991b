package jwt

import (
	"errors"
	"testing"
	"time"
)

func newTestService() *HMACService {
	return NewHMACService("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	s := newTestService()

	tok, err := s.GenerateAccessToken(7, "a@b.dev", "employer")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := s.ValidateToken(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != 7 || claims.Email != "a@b.dev" || claims.Role != "employer" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Fatalf("expected access token type, got %s", claims.TokenType)
	}
	if s.IsRefreshToken(claims) {
		t.Fatalf("access token misclassified as refresh")
	}
}

func TestRefreshTokenCarriesNoRole(t *testing.T) {
	s := newTestService()

	tok, err := s.GenerateRefreshToken(7)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := s.ValidateToken(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !s.IsRefreshToken(claims) {
		t.Fatalf("refresh token misclassified")
	}
	if claims.Role != "" || claims.Email != "" {
		t.Fatalf("refresh token must not carry identity claims: %+v", claims)
	}
}

func TestValidateToken_Expired(t *testing.T) {
	s := newTestService()
	s.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	tok, err := s.GenerateAccessToken(7, "a@b.dev", "job_seeker")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	s.now = time.Now
	if _, err := s.ValidateToken(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	s := newTestService()
	other := NewHMACService("different", "secrets!", time.Hour, 24*time.Hour)

	tok, err := s.GenerateAccessToken(7, "a@b.dev", "job_seeker")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := other.ValidateToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	s := newTestService()
	if _, err := s.ValidateToken("not.a.token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
