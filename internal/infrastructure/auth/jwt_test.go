package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
)

func testIssuer(t *testing.T) *TokenIssuer {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	return NewTokenIssuer(key, "contracts", "contracts")
}

func TestIssueAndValidateRoundTrip(t *testing.T) {
	issuer := testIssuer(t)
	token, err := issuer.IssueAccessToken("user-1", "owner@example.com", 900)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	userID, email, err := issuer.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if userID != "user-1" || email != "owner@example.com" {
		t.Fatalf("claims = %s/%s", userID, email)
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	issuer := testIssuer(t)
	token, err := issuer.IssueAccessToken("user-1", "owner@example.com", -60)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, _, err := issuer.ValidateAccessToken(token); err == nil {
		t.Fatal("expired token must be rejected")
	}
}

func TestValidateRejectsForeignToken(t *testing.T) {
	a := testIssuer(t)
	b := testIssuer(t)
	token, err := a.IssueAccessToken("user-1", "owner@example.com", 900)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, _, err := b.ValidateAccessToken(token); err == nil {
		t.Fatal("token signed with another key must be rejected")
	}
}
