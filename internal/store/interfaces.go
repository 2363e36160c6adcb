// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-task-keeper/models"
)

// DBTX is the subset of database/sql used by the repositories.
// Both *sql.DB and *sql.Tx satisfy this interface.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and CreatedAt set.
	// A taken username or email yields [ErrUserAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// DeleteUser removes the account; the database cascades to its tasks.
	DeleteUser(ctx context.Context, userID int64) error
}

// TaskRepository persists tasks. It performs no ownership checks; callers
// are expected to authorize access before calling it.
type TaskRepository interface {
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	GetTaskByID(ctx context.Context, taskID int64) (models.Task, error)
	ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	UpdateTask(ctx context.Context, task models.Task) (models.Task, error)
	UpdateTaskStatus(ctx context.Context, taskID int64, done bool) error
	DeleteTask(ctx context.Context, taskID int64) error
	// CopyTasks duplicates every task of fromOwnerID for toOwnerID and
	// returns the number of rows created.
	CopyTasks(ctx context.Context, fromOwnerID, toOwnerID int64) (int64, error)
	// DeleteOwnedTasks removes the tasks of ownerID whose ids belong to
	// ownerID and returns the number of rows removed.
	DeleteOwnedTasks(ctx context.Context, ownerID int64) (int64, error)
}

// Transactor runs a unit of work atomically.
type Transactor interface {
	// WithTx calls fn with repositories bound to a single transaction.
	// The transaction is committed when fn returns nil and rolled back
	// when fn returns an error or panics. Panics are re-raised.
	WithTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
