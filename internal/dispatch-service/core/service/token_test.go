package service

import (
	"errors"
	"testing"
	"time"

	"cargo-dispatch/internal/dispatch-service/core/myerrors"

	"github.com/golang-jwt/jwt"
)

func TestTokenService_IssueAndValidate(t *testing.T) {
	t.Parallel()

	ts, err := NewTokenService("super-secret", "HS256")
	if err != nil {
		t.Fatalf("NewTokenService error: %v", err)
	}

	tok, err := ts.Issue(42, "driver0042", time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := ts.Validate(tok)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("user id mismatch: got %d want 42", claims.UserID)
	}
	if claims.Login != "driver0042" {
		t.Fatalf("login mismatch: got %q want %q", claims.Login, "driver0042")
	}
}

func TestTokenService_Expired(t *testing.T) {
	t.Parallel()

	ts, err := NewTokenService("secret", "HS256")
	if err != nil {
		t.Fatalf("NewTokenService error: %v", err)
	}

	tok, err := ts.Issue(1, "driver", -time.Second)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = ts.Validate(tok)
	if !errors.Is(err, myerrors.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer, _ := NewTokenService("right-secret", "HS256")
	validator, _ := NewTokenService("wrong-secret", "HS256")

	tok, err := issuer.Issue(1, "driver", time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = validator.Validate(tok)
	if !errors.Is(err, myerrors.ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestTokenService_MalformedString(t *testing.T) {
	t.Parallel()

	ts, _ := NewTokenService("secret", "HS256")

	_, err := ts.Validate("not.a.jwt")
	if !errors.Is(err, myerrors.ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestTokenService_AlgorithmMismatch(t *testing.T) {
	t.Parallel()

	ts, _ := NewTokenService("secret", "HS256")

	// Token signed with the same secret but a different HS variant must
	// not validate.
	foreign := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"user_id":    float64(1),
		"user_login": "driver",
		"exp":        time.Now().Add(time.Hour).Unix(),
	})
	tok, err := foreign.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	_, err = ts.Validate(tok)
	if !errors.Is(err, myerrors.ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestTokenService_MissingClaims(t *testing.T) {
	t.Parallel()

	ts, _ := NewTokenService("secret", "HS256")

	bare := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tok, err := bare.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	_, err = ts.Validate(tok)
	if !errors.Is(err, myerrors.ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestNewTokenService_BadConfig(t *testing.T) {
	t.Parallel()

	if _, err := NewTokenService("", "HS256"); err == nil {
		t.Fatal("expected error for empty secret")
	}
	if _, err := NewTokenService("secret", "HS9000"); err == nil {
		t.Fatal("expected error for unknown algorithm")
	}
	if _, err := NewTokenService("secret", "RS256"); err == nil {
		t.Fatal("expected error for non-HMAC algorithm")
	}
}
