// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication and task
// ownership. A user is immutable after registration.
type User struct {
	// UserID is the server-assigned unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the unique login name used during authentication.
	Username string `json:"username"`

	// Email is the unique e-mail address; it is also how other users address
	// this account when sharing tasks.
	Email string `json:"email"`

	// PasswordHash is the one-way hash of the user's password.
	// It is never serialised to clients.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// ToResponse converts the user into its public representation.
func (u User) ToResponse() UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
