// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by a session token.
//
// It embeds [jwt.RegisteredClaims] for the standard claims (exp, iat, iss)
// and adds the custom "user_id" claim that identifies the token holder.
type TokenClaims struct {
	jwt.RegisteredClaims

	// UserID is the identifier of the authenticated user. A zero value means
	// the claim was absent.
	UserID int64 `json:"user_id,omitempty"`
}

// Token is a freshly issued or successfully validated session token.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier taken from the "user_id" claim.
	UserID int64 `json:"-"`

	// ExpiresAt is the moment the token stops being valid.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
