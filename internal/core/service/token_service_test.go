package service

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokenService("secret")

	token, err := tokens.Issue(42, "ada@example.com", "admin")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	claims, err := tokens.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.UserID() != 42 || claims.Email != "ada@example.com" || claims.Role != "admin" {
		t.Errorf("unexpected claims %+v", claims)
	}
	if claims.Issuer != TokenIssuer {
		t.Errorf("expected issuer %q, got %q", TokenIssuer, claims.Issuer)
	}
}

func TestValidateTokenRejects(t *testing.T) {
	tokens := NewTokenService("secret")
	token, err := tokens.Issue(1, "ada@example.com", "")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := NewTokenService("other").ValidateToken(token); err == nil {
		t.Error("expected a token signed with another secret to be rejected")
	}
	if _, err := tokens.ValidateToken(token + "x"); err == nil {
		t.Error("expected a tampered token to be rejected")
	}
	if _, err := tokens.ValidateToken(""); err == nil {
		t.Error("expected an empty token to be rejected")
	}

	later := NewTokenService("secret")
	later.now = func() time.Time { return time.Now().Add(TokenExpirationHours*time.Hour + time.Minute) }
	if _, err := later.ValidateToken(token); err == nil {
		t.Error("expected an expired token to be rejected")
	}
}

func TestPasswordHashing(t *testing.T) {
	tokens := NewTokenService("secret")

	hash, err := tokens.HashPassword("s3cret!")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "s3cret!" {
		t.Fatal("hash must differ from the password")
	}
	if !tokens.VerifyPassword("s3cret!", hash) {
		t.Error("expected the password to verify")
	}
	if tokens.VerifyPassword("wrong", hash) {
		t.Error("expected a wrong password to fail")
	}
	if tokens.VerifyPassword("s3cret!", "") {
		t.Error("expected an empty hash to fail")
	}
}

func TestUserIDMalformedSubject(t *testing.T) {
	claims := &TokenClaims{}
	claims.Subject = "abc"
	if claims.UserID() != 0 {
		t.Errorf("expected 0, got %d", claims.UserID())
	}
}
