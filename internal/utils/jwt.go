// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrUnsupportedSigningAlgorithm is returned when the configured algorithm is
// not one of HS256, HS384 or HS512.
var ErrUnsupportedSigningAlgorithm = errors.New("unsupported token signing algorithm")

// ErrNoUserIDClaim is returned when a verified token does not carry a
// positive "user_id" claim.
var ErrNoUserIDClaim = errors.New("token has no user_id claim")

// JWTParams groups the settings shared by token signing and validation.
type JWTParams struct {
	// SignKey is the HMAC secret.
	SignKey string
	// Algorithm is HS256, HS384 or HS512.
	Algorithm string
	// Issuer is written to and, when non-empty, required in the "iss" claim.
	Issuer string
	// TTL is added to the issue time to form "exp".
	TTL time.Duration
}

func (p JWTParams) signingMethod() (*jwt.SigningMethodHMAC, error) {
	switch p.Algorithm {
	case jwt.SigningMethodHS256.Alg():
		return jwt.SigningMethodHS256, nil
	case jwt.SigningMethodHS384.Alg():
		return jwt.SigningMethodHS384, nil
	case jwt.SigningMethodHS512.Alg():
		return jwt.SigningMethodHS512, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSigningAlgorithm, p.Algorithm)
	}
}

// GenerateJWTToken creates a signed HMAC JWT token for userID.
//
// The token includes the following claims:
//   - user_id: the owner of the session
//   - exp:     now plus params.TTL
//   - iat:     now
//   - iss:     params.Issuer, omitted when empty
//
// A zero TTL is accepted and produces a token that is already expired.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(params, 42, time.Now())
func GenerateJWTToken(params JWTParams, userID int64, now time.Time) (models.Token, error) {
	if params.SignKey == "" || params.TTL < 0 {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	method, err := params.signingMethod()
	if err != nil {
		return models.Token{}, err
	}

	expiresAt := now.Add(params.TTL)
	claims := &models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    params.Issuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	}

	tokenString, err := jwt.NewWithClaims(method, claims).SignedString([]byte(params.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{
		SignedString: tokenString,
		UserID:       userID,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its claims.
//
// Validation includes:
//   - Signature verification with params.SignKey
//   - Algorithm check: only params.Algorithm is accepted
//   - Expiration (exp) claim presence and check against now
//   - Issuer (iss) check when params.Issuer is set
//   - user_id claim presence
//
// Expired tokens yield an error matching [jwt.ErrTokenExpired].
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(rawToken, params, time.Now())
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString string, params JWTParams, now time.Time) (models.Token, error) {
	method, err := params.signingMethod()
	if err != nil {
		return models.Token{}, err
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	}
	if params.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(params.Issuer))
	}

	claims := &models.TokenClaims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(params.SignKey), nil
	}, opts...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.UserID <= 0 {
		return models.Token{}, ErrNoUserIDClaim
	}

	return models.Token{
		SignedString: tokenString,
		UserID:       claims.UserID,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}
