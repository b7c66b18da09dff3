package service

import (
	"errors"
	"testing"

	"github.com/escriba/internal/config"
)

func TestValidatePasswordMinLength(t *testing.T) {
	policy := config.PasswordPolicyConfig{MinLength: 10}
	if err := ValidatePassword(policy, "short1"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("want ErrWeakPassword got %v", err)
	}
	if err := ValidatePassword(policy, "long-enough-1"); err != nil {
		t.Fatalf("valid password rejected: %v", err)
	}
}

func TestValidatePasswordCharacterClasses(t *testing.T) {
	policy := config.PasswordPolicyConfig{
		MinLength:      8,
		RequireUpper:   true,
		RequireLower:   true,
		RequireNumber:  true,
		RequireSpecial: true,
	}

	cases := []struct {
		password string
		ok       bool
	}{
		{"Abcdef1!", true},
		{"abcdef1!", false},
		{"ABCDEF1!", false},
		{"Abcdefg!", false},
		{"Abcdefg1", false},
	}
	for _, tc := range cases {
		err := ValidatePassword(policy, tc.password)
		if tc.ok && err != nil {
			t.Fatalf("password %q should pass, got %v", tc.password, err)
		}
		if !tc.ok && !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("password %q should fail, got %v", tc.password, err)
		}
	}
}
