package utils

import (
	"testing"
	"time"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken("42", "advisor@example.com", "advisor", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	parsed, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if !parsed.Valid {
		t.Fatalf("expected token to be valid")
	}

	sub, err := ExtractIDFromToken(token)
	if err != nil {
		t.Fatalf("ExtractIDFromToken failed: %v", err)
	}
	if sub != "42" {
		t.Errorf("expected subject 42, got %q", sub)
	}

	role, err := ExtractRoleFromToken(token)
	if err != nil {
		t.Fatalf("ExtractRoleFromToken failed: %v", err)
	}
	if role != "advisor" {
		t.Errorf("expected role advisor, got %q", role)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Fatalf("expected validation error for malformed token")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("7", "x@example.com", "investor", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if _, err := ValidateToken(token); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestHashTokenIsStable(t *testing.T) {
	a := HashToken("some-token")
	b := HashToken("some-token")
	if a != b {
		t.Fatalf("hash not deterministic: %q vs %q", a, b)
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(a))
	}
	if a == HashToken("other-token") {
		t.Fatalf("distinct tokens should hash differently")
	}
}
