// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/devkit-vault/models"
)

// BridgeTokenIssuer is the issuer claim of plugin bridge tokens.
const BridgeTokenIssuer = "devkit-vault-bridge"

// GenerateJWTToken creates a signed HMAC-SHA256 token for pluginID.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the bridge that issued the token
//   - Subject   (sub): the plugin ID
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required.
//
//	token, err := utils.GenerateJWTToken(utils.BridgeTokenIssuer, "code_scanner", 15*time.Minute, key)
func GenerateJWTToken(issuer, pluginID string, tokenDuration time.Duration, signKey []byte) (models.Token, error) {
	if issuer == "" || pluginID == "" || tokenDuration <= 0 || len(signKey) == 0 {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   pluginID,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: *claims, SignedString: tokenString, PluginID: pluginID}, nil
}

// ValidateAndParseJWTToken verifies the signature, issuer and expiry of
// tokenString and extracts the plugin ID from the subject claim. Only HS256
// is accepted.
func ValidateAndParseJWTToken(tokenString string, tokenSignKey []byte, tokenIssuer string) (models.Token, error) {
	claims := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return tokenSignKey, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	pluginID, err := claims.GetPluginID()
	if err != nil {
		return models.Token{}, err
	}

	return models.Token{Token: token, RegisteredClaims: claims.RegisteredClaims, PluginID: pluginID, SignedString: tokenString}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <t>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
