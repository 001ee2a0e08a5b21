// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var testSignKey = []byte("0123456789abcdef0123456789abcdef")

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(BridgeTokenIssuer, "code_scanner", time.Hour, testSignKey)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.PluginID != "code_scanner" {
		t.Errorf("expected plugin id code_scanner, got %s", token.PluginID)
	}

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != BridgeTokenIssuer {
		t.Errorf("expected issuer %s, got %s", BridgeTokenIssuer, claims.Issuer)
	}
	if claims.Subject != "code_scanner" {
		t.Errorf("expected subject 'code_scanner', got %s", claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		pluginID string
		duration time.Duration
		key      []byte
	}{
		{"empty issuer", "", "p", time.Hour, testSignKey},
		{"empty plugin", "iss", "", time.Hour, testSignKey},
		{"zero duration", "iss", "p", 0, testSignKey},
		{"empty key", "iss", "p", time.Hour, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateJWTToken(tt.issuer, tt.pluginID, tt.duration, tt.key); err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	genToken, err := GenerateJWTToken(BridgeTokenIssuer, "openai_assistant", 5*time.Minute, testSignKey)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(genToken.SignedString, testSignKey, BridgeTokenIssuer)

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsed.PluginID != "openai_assistant" {
		t.Errorf("expected plugin openai_assistant, got %s", parsed.PluginID)
	}
	if parsed.String() != genToken.SignedString {
		t.Error("expected parsed token to keep its compact form")
	}
}

func TestValidateAndParseJWTToken_Rejected(t *testing.T) {
	valid, _ := GenerateJWTToken(BridgeTokenIssuer, "p", time.Minute, testSignKey)
	otherIssuer, _ := GenerateJWTToken("someone-else", "p", time.Minute, testSignKey)
	expired, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:    BridgeTokenIssuer,
		Subject:   "p",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}).SignedString(testSignKey)
	noExpiry, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:  BridgeTokenIssuer,
		Subject: "p",
	}).SignedString(testSignKey)
	noSubject, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:    BridgeTokenIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString(testSignKey)
	hs512, _ := jwt.NewWithClaims(jwt.SigningMethodHS512, &jwt.RegisteredClaims{
		Issuer:    BridgeTokenIssuer,
		Subject:   "p",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString(testSignKey)

	tests := []struct {
		name  string
		token string
		key   []byte
	}{
		{"wrong key", valid.SignedString, []byte("another-key")},
		{"wrong issuer", otherIssuer.SignedString, testSignKey},
		{"expired", expired, testSignKey},
		{"no expiry", noExpiry, testSignKey},
		{"no subject", noSubject, testSignKey},
		{"other algorithm", hs512, testSignKey},
		{"malformed", "not.a.jwt", testSignKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateAndParseJWTToken(tt.token, tt.key, BridgeTokenIssuer); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", false},
		{"bearer   abc", "abc", false},
		{"Basic abc", "", true},
		{"Bearer", "", true},
		{"", "", true},
		{"Bearer a b", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("wantErr=%v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
