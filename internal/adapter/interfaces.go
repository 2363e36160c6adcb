// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the task keeper REST API.
//
// [TaskAdapter] hides the HTTP details: request encoding, the bearer token
// obtained at Register or Login, and the mapping of response statuses to the
// sentinel errors in errors.go, so callers can use [errors.Is] (e.g.
// [ErrNotFound] for 404, [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

// TaskAdapter is a client of the task keeper server. A single adapter holds
// one bearer token and is safe for concurrent use.
type TaskAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" before Register or Login.
	Token() string

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, req models.RegisterRequest) (models.UserResponse, error)

	// Login exchanges credentials for a token and stores it.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// GetUser fetches the public profile of any user.
	GetUser(ctx context.Context, userID int64) (models.UserResponse, error)

	// DeleteAccount removes the authenticated account with all its tasks and
	// forgets the token.
	DeleteAccount(ctx context.Context) error

	ListTasks(ctx context.Context, req models.TaskListRequest) ([]models.TaskResponse, error)
	CreateTask(ctx context.Context, req models.TaskRequest) (models.TaskResponse, error)
	GetTask(ctx context.Context, taskID int64) (models.TaskResponse, error)
	UpdateTask(ctx context.Context, taskID int64, req models.TaskRequest) (models.TaskResponse, error)
	SetTaskStatus(ctx context.Context, taskID int64, done bool) (models.StatusMessage, error)
	DeleteTask(ctx context.Context, taskID int64) error

	// ShareTasks copies the caller's tasks to the user with the given e-mail,
	// or with share set to false deletes the caller's own tasks.
	ShareTasks(ctx context.Context, req models.ShareRequest) (models.ShareResult, error)

	// GetVersion returns the server build version.
	GetVersion(ctx context.Context) (string, error)
}
