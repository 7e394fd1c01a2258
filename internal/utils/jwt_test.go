// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/linguangsen637-crypto/an-easy-travel-website/models"
)

var testIdentity = models.Identity{UserID: 123, Email: "a@b.com"}

func TestGenerateJWTToken_Success(t *testing.T) {
	now := time.Now()
	token, err := GenerateJWTToken("test-issuer", testIdentity, time.Hour, "secret-key", now)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Issuer != "test-issuer" {
		t.Errorf("expected issuer test-issuer, got %s", token.Issuer)
	}
	if token.Subject != "123" {
		t.Errorf("expected subject '123', got %s", token.Subject)
	}
	if token.Claims.UserID != 123 || token.Email != "a@b.com" {
		t.Errorf("unexpected custom claims: %+v", token.Claims)
	}
	if !token.ExpiresAt.Time.Equal(now.Add(time.Hour).Truncate(time.Second)) {
		t.Errorf("unexpected expiry %v", token.ExpiresAt.Time)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		identity models.Identity
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", testIdentity, time.Hour, "key"},
		{"zero duration", "iss", testIdentity, 0, "key"},
		{"empty key", "iss", testIdentity, time.Hour, ""},
		{"no user", "iss", models.Identity{}, time.Hour, "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.identity, tt.duration, tt.key, time.Now())
			if !errors.Is(err, ErrInvalidTokenParams) {
				t.Errorf("expected ErrInvalidTokenParams, got %v", err)
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("iss", testIdentity, time.Hour, "key", time.Now())
	if err != nil {
		t.Fatal(err)
	}

	parsed, err := ValidateAndParseJWTToken(token.SignedString, "key", "iss")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if parsed.Claims.UserID != 123 {
		t.Errorf("expected UserID 123, got %d", parsed.Claims.UserID)
	}
	if parsed.Email != "a@b.com" {
		t.Errorf("expected email a@b.com, got %s", parsed.Email)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	token, _ := GenerateJWTToken("iss", testIdentity, time.Hour, "key", time.Now())

	if _, err := ValidateAndParseJWTToken(token.SignedString, "other-key", "iss"); err == nil {
		t.Error("expected error for wrong key")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	token, _ := GenerateJWTToken("iss", testIdentity, time.Hour, "key", time.Now().Add(-2*time.Hour))

	_, err := ValidateAndParseJWTToken(token.SignedString, "key", "iss")
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	token, _ := GenerateJWTToken("iss", testIdentity, time.Hour, "key", time.Now())

	if _, err := ValidateAndParseJWTToken(token.SignedString, "key", "someone-else"); err == nil {
		t.Error("expected error for wrong issuer")
	}
}

func TestValidateAndParseJWTToken_RejectsOtherAlgorithms(t *testing.T) {
	claims := models.Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "iss",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("key"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ValidateAndParseJWTToken(signed, "key", "iss"); err == nil {
		t.Error("expected error for HS512 token")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	if _, err := ValidateAndParseJWTToken("not.a.token", "key", "iss"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc", want: "abc"},
		{header: "bearer  abc ", want: "abc"},
		{header: "Bearer", wantErr: true},
		{header: "Basic abc", wantErr: true},
		{header: "", wantErr: true},
		{header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseBearerToken(tt.header)
		if tt.wantErr {
			if !errors.Is(err, ErrNotBearerToken) {
				t.Errorf("%q: expected ErrNotBearerToken, got %v", tt.header, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("%q: got %q, %v", tt.header, got, err)
		}
	}
}

func TestJWTIssuer_RoundTrip(t *testing.T) {
	issuer := NewJWTIssuer("easy-travel", "secret-key", 7*24*time.Hour)

	token, err := issuer.Issue(testIdentity)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	identity, err := issuer.Parse(token.String())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if identity != testIdentity {
		t.Errorf("expected %+v, got %+v", testIdentity, identity)
	}
}

func TestJWTIssuer_ExpiresAfterDuration(t *testing.T) {
	issuer := NewJWTIssuer("easy-travel", "secret-key", 7*24*time.Hour)
	issuer.now = func() time.Time { return time.Now().Add(-8 * 24 * time.Hour) }

	token, err := issuer.Issue(testIdentity)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if _, err := issuer.Parse(token.String()); !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected jwt.ErrTokenExpired, got %v", err)
	}
}

func TestJWTIssuer_OtherKeyRejected(t *testing.T) {
	token, err := NewJWTIssuer("easy-travel", "key-a", time.Hour).Issue(testIdentity)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if _, err := NewJWTIssuer("easy-travel", "key-b", time.Hour).Parse(token.String()); err == nil {
		t.Error("expected error for token signed with another key")
	}
}
