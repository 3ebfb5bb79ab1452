package service

import (
	"errors"
	"strings"
	"testing"

	"cargo-dispatch/internal/dispatch-service/core/myerrors"
)

func TestValidateLogin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		login   string
		wantErr error
	}{
		{"too short", "abcd", myerrors.ErrInvalidLogin},
		{"min length", "abcde", nil},
		{"max length", strings.Repeat("a", 50), nil},
		{"too long", strings.Repeat("a", 51), myerrors.ErrInvalidLogin},
		{"empty", "", myerrors.ErrInvalidLogin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validateLogin(tt.login); !errors.Is(err, tt.wantErr) {
				t.Fatalf("validateLogin(%q) = %v, want %v", tt.login, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"too short", "abcd", myerrors.ErrInvalidPassword},
		{"min length", "abcde", nil},
		{"max length", strings.Repeat("a", 25), nil},
		{"too long", strings.Repeat("a", 26), myerrors.ErrInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validatePassword(tt.password); !errors.Is(err, tt.wantErr) {
				t.Fatalf("validatePassword(%q) = %v, want %v", tt.password, err, tt.wantErr)
			}
		})
	}
}
