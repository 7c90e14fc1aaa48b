package jwt

import (
	"testing"
	"time"

	"hospital-operations-api/config"

	"github.com/google/uuid"
)

func testService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := testService()
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "doc@example.com", 3)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}
	if tokenID == "" {
		t.Fatal("expected non-empty token ID")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("expected user ID %s, got %s", userID, claims.UserID)
	}
	if claims.Email != "doc@example.com" {
		t.Fatalf("expected email doc@example.com, got %s", claims.Email)
	}
	if claims.RoleID != 3 {
		t.Fatalf("expected role ID 3, got %d", claims.RoleID)
	}
	if claims.TokenType != AccessToken {
		t.Fatalf("expected access token type, got %s", claims.TokenType)
	}
	if claims.TokenID != tokenID {
		t.Fatalf("expected token ID %s, got %s", tokenID, claims.TokenID)
	}
}

func TestRefreshTokenType(t *testing.T) {
	svc := testService()

	token, _, err := svc.GenerateRefreshToken(uuid.New(), "p@example.com", 4)
	if err != nil {
		t.Fatalf("GenerateRefreshToken failed: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.TokenType != RefreshToken {
		t.Fatalf("expected refresh token type, got %s", claims.TokenType)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := testService().GenerateAccessToken(uuid.New(), "x@example.com", 1)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	other := NewJWTService(config.JWTConfig{Secret: "different-secret", AccessExpiry: time.Minute})
	if _, err := other.ValidateToken(token); err == nil {
		t.Fatal("expected validation to fail with a different secret")
	}
}

func TestValidateToken_Expired(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: -time.Minute})

	token, _, err := svc.GenerateAccessToken(uuid.New(), "x@example.com", 1)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}
	if _, err := svc.ValidateToken(token); err == nil {
		t.Fatal("expected validation to fail for an expired token")
	}
}
