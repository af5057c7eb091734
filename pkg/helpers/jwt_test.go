package helpers_test

import (
	"testing"
	"time"

	"github.com/oksasatya/go-todo-api/pkg/helpers"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	m := helpers.NewJWTManager("secret", time.Hour)

	token, exp, err := m.Generate("user-1", "a@example.com")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if !exp.After(time.Now()) {
		t.Fatal("expected expiry in the future")
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("UserID = %q, want %q", claims.UserID, "user-1")
	}
	if claims.Email != "a@example.com" {
		t.Fatalf("Email = %q, want %q", claims.Email, "a@example.com")
	}
	if claims.Subject != "user-1" {
		t.Fatalf("Subject = %q, want %q", claims.Subject, "user-1")
	}
}

func TestJWTManager_RejectsWrongSecret(t *testing.T) {
	issuer := helpers.NewJWTManager("secret-a", time.Hour)
	verifier := helpers.NewJWTManager("secret-b", time.Hour)

	token, _, err := issuer.Generate("user-1", "a@example.com")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := verifier.Parse(token); err == nil {
		t.Fatal("expected parse to fail with a different secret")
	}
}

func TestJWTManager_RejectsExpired(t *testing.T) {
	m := helpers.NewJWTManager("secret", -time.Minute)

	token, _, err := m.Generate("user-1", "a@example.com")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := m.Parse(token); err == nil {
		t.Fatal("expected parse to fail for an expired token")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := helpers.HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "secret" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !helpers.CompareHashAndPassword(hash, "secret") {
		t.Fatal("expected correct password to verify")
	}
	if helpers.CompareHashAndPassword(hash, "wrong") {
		t.Fatal("expected wrong password to fail")
	}
}
