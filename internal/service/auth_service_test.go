package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/config"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/dto"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/pkg/jwt"
)

func newTestJWTManager() *jwt.Manager {
	return jwt.NewManager(&config.AuthConfig{
		JWTSecret: "test-secret-key-for-tests",
		TokenTTL:  time.Hour,
	})
}

func newTestAuthService() AuthService {
	return NewAuthService(newTestRepo(), newTestJWTManager(), nil, zap.NewNop())
}

func signupReq() *dto.SignupRequest {
	return &dto.SignupRequest{
		Name:       "Asha Rao",
		Email:      "asha@example.com",
		Password:   "s3cretpass",
		Department: "CSE",
	}
}

func TestSignupStoresHashNotPassword(t *testing.T) {
	repo := newTestRepo()
	svc := NewAuthService(repo, newTestJWTManager(), nil, zap.NewNop())

	result, err := svc.Signup(context.Background(), signupReq())
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if result.AccessToken == "" {
		t.Fatal("expected an access token")
	}

	stored, err := repo.User.GetByEmail(context.Background(), "asha@example.com")
	if err != nil {
		t.Fatalf("stored user not found: %v", err)
	}
	if stored.PasswordHash == "s3cretpass" {
		t.Fatal("password stored in plaintext")
	}
	if !strings.HasPrefix(stored.PasswordHash, "$2") {
		t.Fatalf("expected a bcrypt hash, got %q", stored.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cretpass")); err != nil {
		t.Fatalf("stored hash does not verify the password: %v", err)
	}
	if stored.Subscription != "free" {
		t.Fatalf("expected free tier default, got %q", stored.Subscription)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.Signup(ctx, signupReq()); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}

	second := signupReq()
	second.Name = "Someone Else"
	_, err := svc.Signup(ctx, second)
	if !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestLoginRightAndWrongPassword(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.Signup(ctx, signupReq()); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	result, err := svc.Login(ctx, &dto.LoginRequest{Email: "asha@example.com", Password: "s3cretpass"})
	if err != nil {
		t.Fatalf("login with correct password failed: %v", err)
	}
	if result.User.Email != "asha@example.com" {
		t.Fatalf("unexpected user in login response: %q", result.User.Email)
	}

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "asha@example.com", Password: "wrongpass"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
}

func TestLoginUnknownEmailIndistinguishable(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.Signup(ctx, signupReq()); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	_, unknownErr := svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "s3cretpass"})
	_, wrongErr := svc.Login(ctx, &dto.LoginRequest{Email: "asha@example.com", Password: "nope"})

	if !errors.Is(unknownErr, ErrInvalidCredentials) || !errors.Is(wrongErr, ErrInvalidCredentials) {
		t.Fatalf("unknown email and wrong password must fail the same way, got %v and %v", unknownErr, wrongErr)
	}
}

func TestTokenCarriesUserIdentity(t *testing.T) {
	jwtMgr := newTestJWTManager()
	svc := NewAuthService(newTestRepo(), jwtMgr, nil, zap.NewNop())

	result, err := svc.Signup(context.Background(), signupReq())
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	claims, err := jwtMgr.ParseToken(result.AccessToken)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.UserID != result.User.ID {
		t.Fatalf("token user id %d does not match user %d", claims.UserID, result.User.ID)
	}
	if claims.Department != "CSE" {
		t.Fatalf("expected department CSE in claims, got %q", claims.Department)
	}
}

func TestLogoutWithoutRedisIsNoop(t *testing.T) {
	svc := newTestAuthService()
	if err := svc.Logout(context.Background(), "some-jti", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("logout without redis should succeed, got %v", err)
	}
}
