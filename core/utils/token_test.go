package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	InitTokens("test-secret", 30, 168)

	userID := uuid.New()
	token, err := GenerateAccessToken(userID, "kai@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := ValidateAndParseToken(token)
	if err != nil {
		t.Fatalf("ValidateAndParseToken: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}
	if claims.Email != "kai@example.com" {
		t.Errorf("Email = %s", claims.Email)
	}
	if claims.Type != TokenTypeAccess {
		t.Errorf("Type = %s, want %s", claims.Type, TokenTypeAccess)
	}
}

func TestRefreshTokenType(t *testing.T) {
	InitTokens("test-secret", 30, 168)

	token, err := GenerateRefreshToken(uuid.New(), "kai@example.com")
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}
	claims, err := ValidateAndParseToken(token)
	if err != nil {
		t.Fatalf("ValidateAndParseToken: %v", err)
	}
	if claims.Type != TokenTypeRefresh {
		t.Errorf("Type = %s, want %s", claims.Type, TokenTypeRefresh)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	InitTokens("secret-one", 30, 168)
	token, err := GenerateAccessToken(uuid.New(), "kai@example.com")
	if err != nil {
		t.Fatal(err)
	}

	InitTokens("secret-two", 30, 168)
	if _, err := ValidateAndParseToken(token); err == nil {
		t.Error("expected validation to fail with a different secret")
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	InitTokens("test-secret", 30, 168)
	if _, err := ValidateAndParseToken("not-a-jwt"); err == nil {
		t.Error("expected an error for malformed token")
	}
}
