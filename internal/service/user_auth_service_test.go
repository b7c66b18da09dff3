package service

import (
	"errors"
	"testing"

	"github.com/escriba/internal/config"
	"github.com/escriba/internal/repository"

	"gorm.io/gorm"
)

func newUserAuthService(db *gorm.DB) *UserAuthService {
	return NewUserAuthService(
		repository.NewUserRepository(db),
		config.JWTConfig{SecretKey: "test-user-secret-0123456789abcdef", ExpireHours: 1},
		config.PasswordPolicyConfig{MinLength: 8},
	)
}

func TestRegisterValidation(t *testing.T) {
	db := setupServiceDB(t)
	svc := newUserAuthService(db)

	if _, err := svc.Register(RegisterInput{Email: "not-an-email", Password: "long-enough-1"}); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("want ErrInvalidEmail got %v", err)
	}
	if _, err := svc.Register(RegisterInput{Email: "a@example.com", Password: "short"}); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("want ErrWeakPassword got %v", err)
	}

	user, err := svc.Register(RegisterInput{Email: "A@Example.com", Password: "long-enough-1"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Email != "a@example.com" {
		t.Fatalf("email should be normalized, got %s", user.Email)
	}
	if user.DisplayName != "a" {
		t.Fatalf("display name should default to local part, got %s", user.DisplayName)
	}

	if _, err := svc.Register(RegisterInput{Email: "a@example.com", Password: "long-enough-1"}); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("want ErrEmailExists got %v", err)
	}
}

func TestLoginAndToken(t *testing.T) {
	db := setupServiceDB(t)
	svc := newUserAuthService(db)

	if _, err := svc.Register(RegisterInput{Email: "a@example.com", Password: "long-enough-1"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login("a@example.com", "long-enough-1", false)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("empty token")
	}
	if user.LastLoginAt == nil {
		t.Fatalf("last login not recorded")
	}

	if _, _, err := svc.Login("a@example.com", "wrong-password", false); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials got %v", err)
	}
	if _, _, err := svc.Login("nobody@example.com", "long-enough-1", false); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials got %v", err)
	}
}
