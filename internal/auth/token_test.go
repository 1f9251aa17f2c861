package auth

import (
	"errors"
	"testing"
	"time"
)

var testSecret = []byte("super-secreto-para-tests-0123456789")

func TestIssueAndVerifyToken(t *testing.T) {
	t.Parallel()

	token, expires, err := IssueToken("a@x.com", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}
	if !expires.After(time.Now()) {
		t.Fatal("la expiración debería estar en el futuro")
	}

	subject, err := VerifyToken(token, testSecret)
	if err != nil {
		t.Fatalf("VerifyToken error: %v", err)
	}
	if subject != "a@x.com" {
		t.Fatalf("subject = %q, want %q", subject, "a@x.com")
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	t.Parallel()

	token, _, err := IssueToken("a@x.com", testSecret, -1*time.Second)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	_, err = VerifyToken(token, testSecret)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerifyTokenMalformed(t *testing.T) {
	t.Parallel()

	_, err := VerifyToken("no-es-un-jwt", testSecret)
	if !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	t.Parallel()

	token, _, err := IssueToken("a@x.com", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	// Firmado con otro secret => firma inválida, no "expirado"
	_, err = VerifyToken(token, []byte("otro-secreto-distinto-0123456789abc"))
	if !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}
