package jwt

import (
	"testing"
	"time"

	"github.com/tlodholz/OpsReadyAPI/config"
)

func newTestManager() *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:      "test-secret-key-for-unit-testing-2026",
		Issuer:         "OpsReady",
		Audience:       "OpsReadyClient",
		AccessTokenTTL: 15 * time.Minute,
	})
}

func TestGenerateAndParseAccessToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateAccessToken(7, "jdoe", "Admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}

	if claims.UserID != 7 {
		t.Errorf("expected UserID=7, got %d", claims.UserID)
	}
	if claims.Username != "jdoe" {
		t.Errorf("expected Username=jdoe, got %s", claims.Username)
	}
	if claims.Role != "Admin" {
		t.Errorf("expected Role=Admin, got %s", claims.Role)
	}
	if claims.Issuer != "OpsReady" {
		t.Errorf("expected Issuer=OpsReady, got %s", claims.Issuer)
	}
	if claims.ID == "" {
		t.Error("JTI must not be empty")
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 14*time.Minute || ttl > 16*time.Minute {
		t.Errorf("expected ttl around 15m, got %v", ttl)
	}
}

func TestParseToken_InvalidToken(t *testing.T) {
	m := newTestManager()

	_, err := m.ParseToken("invalid.token.string")
	if err != ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	m1 := newTestManager()
	m2 := NewManager(&config.AuthConfig{
		JWTSecret:      "a-different-secret-key-for-testing-2026",
		Issuer:         "OpsReady",
		Audience:       "OpsReadyClient",
		AccessTokenTTL: 15 * time.Minute,
	})

	token, _ := m1.GenerateAccessToken(1, "jdoe", "User")
	if _, err := m2.ParseToken(token); err == nil {
		t.Error("a token signed with another secret must be rejected")
	}
}

func TestParseToken_WrongAudience(t *testing.T) {
	m1 := newTestManager()
	m2 := NewManager(&config.AuthConfig{
		JWTSecret:      "test-secret-key-for-unit-testing-2026",
		Issuer:         "OpsReady",
		Audience:       "SomeoneElse",
		AccessTokenTTL: 15 * time.Minute,
	})

	token, _ := m1.GenerateAccessToken(1, "jdoe", "User")
	if _, err := m2.ParseToken(token); err != ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid for audience mismatch, got %v", err)
	}
}

func TestParseToken_ExpiredToken(t *testing.T) {
	m := newTestManager()
	issued := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issued }

	token, _ := m.GenerateAccessToken(1, "jdoe", "User")
	m.now = func() time.Time { return issued.Add(time.Hour) }

	_, err := m.ParseToken(token)
	if err != ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}
