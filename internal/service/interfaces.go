// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

// TokenService mints and verifies session tokens. It holds no state besides
// its configuration, so one instance serves both directions.
type TokenService interface {
	// Issue signs a token for userID that expires after the configured TTL.
	Issue(ctx context.Context, userID int64) (models.Token, error)
	// Validate returns the user id carried by tokenString. It fails with
	// ErrTokenIsExpired or ErrTokenIsInvalid.
	Validate(ctx context.Context, tokenString string) (int64, error)
}

type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	// Authenticate resolves a bearer token to the current state of its user.
	// Any failure is reported as ErrUnauthenticated.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// TaskService exposes task operations on behalf of an authenticated owner.
// Single-task operations report a missing task before a foreign one.
type TaskService interface {
	List(ctx context.Context, ownerID int64, req models.TaskListRequest) ([]models.Task, error)
	Get(ctx context.Context, ownerID, taskID int64) (models.Task, error)
	Create(ctx context.Context, ownerID int64, req models.TaskRequest) (models.Task, error)
	Update(ctx context.Context, ownerID, taskID int64, req models.TaskRequest) (models.Task, error)
	PatchStatus(ctx context.Context, ownerID, taskID int64, done bool) (models.StatusMessage, error)
	Delete(ctx context.Context, ownerID, taskID int64) error
	Share(ctx context.Context, ownerID int64, req models.ShareRequest) (models.ShareResult, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// TaskServiceWrapper defines middleware composition for TaskService.
// Implementations wrap an existing TaskService to add behavior such as
// validation.
type TaskServiceWrapper interface {
	Wrap(TaskService) TaskService
}

// AuthServiceWrapper defines middleware composition for AuthService.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}
