// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/linguangsen637-crypto/an-easy-travel-website/models"
)

// ErrInvalidTokenParams is returned by GenerateJWTToken when a required
// parameter is empty or zero.
var (
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT Token")

	// ErrNotBearerToken is returned by ParseBearerToken for any header that
	// is not exactly "Bearer <token>".
	ErrNotBearerToken = errors.New("authorization header is not a bearer token")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for identity.
//
// The token carries the custom "userId" and "email" claims plus:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus tokenDuration
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("easy-travel", identity, 7*24*time.Hour, "secret", time.Now())
func GenerateJWTToken(issuer string, identity models.Identity, tokenDuration time.Duration, signKey string, now time.Time) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" || identity.UserID == 0 {
		return models.Token{}, ErrInvalidTokenParams
	}

	claims := models.Claims{
		UserID: identity.UserID,
		Email:  identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(identity.UserID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - HS256 signature verification using the provided sign key
//   - Issuer (iss) claim check against tokenIssuer
//   - Expiration (exp) claim presence and check
//   - a positive user id in either "userId" or "sub"
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	token := models.Token{Claims: *claims, SignedString: tokenString}
	userID, err := token.GetUserID()
	if err != nil {
		return models.Token{}, err
	}
	if userID <= 0 {
		return models.Token{}, errors.New("token carries no user id")
	}
	token.Claims.UserID = userID

	return token, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrNotBearerToken
	}
	return parts[1], nil
}

// JWTIssuer issues and verifies session credentials with fixed parameters.
type JWTIssuer struct {
	issuer   string
	signKey  string
	duration time.Duration
	now      func() time.Time
}

// NewJWTIssuer returns a JWTIssuer signing with signKey.
func NewJWTIssuer(issuer, signKey string, duration time.Duration) *JWTIssuer {
	return &JWTIssuer{
		issuer:   issuer,
		signKey:  signKey,
		duration: duration,
		now:      time.Now,
	}
}

// Issue signs a token for identity that expires after the configured duration.
func (j *JWTIssuer) Issue(identity models.Identity) (models.Token, error) {
	return GenerateJWTToken(j.issuer, identity, j.duration, j.signKey, j.now())
}

// Parse verifies tokenString and returns its identity.
func (j *JWTIssuer) Parse(tokenString string) (models.Identity, error) {
	token, err := ValidateAndParseJWTToken(tokenString, j.signKey, j.issuer)
	if err != nil {
		return models.Identity{}, err
	}
	return models.Identity{UserID: token.Claims.UserID, Email: token.Claims.Email}, nil
}
