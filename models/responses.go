// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// UserResponse is the public profile of a user. It never carries the
// password hash.
type UserResponse struct {
	UserID    int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// TaskResponse is the public representation of a task together with its
// owner's profile.
type TaskResponse struct {
	TaskID    int64        `json:"id"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	Done      bool         `json:"done"`
	CreatedAt time.Time    `json:"created_at"`
	OwnerID   int64        `json:"owner_id"`
	Owner     UserResponse `json:"owner"`
}

// StatusMessage is a human-readable outcome of a status change.
type StatusMessage struct {
	Message string `json:"message"`
}

// ShareResult summarises a share or unshare operation.
type ShareResult struct {
	// Shared reports which branch was executed.
	Shared bool `json:"shared"`

	// TargetEmail is the e-mail the caller addressed.
	TargetEmail string `json:"target_email"`

	// Affected is the number of task rows created (share) or deleted
	// (unshare).
	Affected int64 `json:"affected"`
}

// WelcomeMessage is served on the API root.
type WelcomeMessage struct {
	Message string `json:"message"`
}
