package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/config"
)

func newTestManager(ttl time.Duration) *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret: "unit-test-secret-0123456789",
		TokenTTL:  ttl,
	})
}

func TestGenerateAndParseToken(t *testing.T) {
	mgr := newTestManager(time.Hour)

	token, err := mgr.GenerateToken(42, "CSE")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := mgr.ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("user id = %d, want 42", claims.UserID)
	}
	if claims.Department != "CSE" {
		t.Fatalf("department = %q, want CSE", claims.Department)
	}
	if claims.ID == "" {
		t.Fatal("token missing jti")
	}
}

func TestParseExpiredToken(t *testing.T) {
	mgr := newTestManager(-time.Minute)

	token, err := mgr.GenerateToken(42, "CSE")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	_, err = mgr.ParseToken(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	mgr := newTestManager(time.Hour)
	other := NewManager(&config.AuthConfig{
		JWTSecret: "a-completely-different-secret",
		TokenTTL:  time.Hour,
	})

	token, err := mgr.GenerateToken(42, "CSE")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	_, err = other.ParseToken(token)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParseGarbageToken(t *testing.T) {
	mgr := newTestManager(time.Hour)

	if _, err := mgr.ParseToken("not.a.token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokensHaveUniqueIDs(t *testing.T) {
	mgr := newTestManager(time.Hour)

	a, _ := mgr.GenerateToken(1, "CSE")
	b, _ := mgr.GenerateToken(1, "CSE")

	ca, err := mgr.ParseToken(a)
	if err != nil {
		t.Fatalf("parse a: %v", err)
	}
	cb, err := mgr.ParseToken(b)
	if err != nil {
		t.Fatalf("parse b: %v", err)
	}
	if ca.ID == cb.ID {
		t.Fatal("two tokens share a jti")
	}
}
