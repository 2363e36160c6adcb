// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/migrations"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLiteStorages opens a migrated in-memory database.
func newSQLiteStorages(t *testing.T) (*DB, *Storages) {
	t.Helper()
	ctx := context.Background()

	db, err := NewConnectSQLite(ctx, config.DB{DSN: ":memory:", Driver: config.DriverSQLite}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate())
	return db, NewStorages(db, logger.Nop())
}

func mustCreateUser(t *testing.T, s *Storages, name string) models.User {
	t.Helper()
	user, err := s.UserRepository.CreateUser(context.Background(), models.User{
		Username:     name,
		Email:        name + "@example.com",
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	return user
}

func mustCreateTask(t *testing.T, s *Storages, ownerID int64, title string) models.Task {
	t.Helper()
	task, err := s.TaskRepository.CreateTask(context.Background(), models.Task{Title: title, Content: "content of " + title, OwnerID: ownerID})
	require.NoError(t, err)
	return task
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, ":memory:?_foreign_keys=on", sqliteDSN(":memory:"))
	assert.Equal(t, "file:tasks.db?cache=shared&_foreign_keys=on", sqliteDSN("file:tasks.db?cache=shared"))
	assert.Equal(t, "tasks.db?_fk=1", sqliteDSN("tasks.db?_fk=1"))
}

func TestNewConnect_UnknownDriver(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{Driver: "mysql"}, logger.Nop())
	assert.Error(t, err)
}

func TestSQLite_DialectAndClassifier(t *testing.T) {
	db, _ := newSQLiteStorages(t)
	assert.Equal(t, migrations.DialectSQLite, db.Dialect())
	assert.IsType(t, &SQLiteErrorClassifier{}, db.errorClassificator)
}

// ─── users ───────────────────────────────────────────────────────────────────

func TestSQLite_UserLifecycle(t *testing.T) {
	_, s := newSQLiteStorages(t)
	ctx := context.Background()

	alice := mustCreateUser(t, s, "alice")
	assert.Positive(t, alice.UserID)
	assert.False(t, alice.CreatedAt.IsZero())

	byID, err := s.UserRepository.FindUserByID(ctx, alice.UserID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	byName, err := s.UserRepository.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.UserID, byName.UserID)

	byEmail, err := s.UserRepository.FindUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, alice.UserID, byEmail.UserID)

	_, err = s.UserRepository.FindUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestSQLite_DuplicateUsernameOrEmail(t *testing.T) {
	_, s := newSQLiteStorages(t)
	ctx := context.Background()
	mustCreateUser(t, s, "alice")

	_, err := s.UserRepository.CreateUser(ctx, models.User{Username: "alice", Email: "other@example.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	_, err = s.UserRepository.CreateUser(ctx, models.User{Username: "other", Email: "alice@example.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestSQLite_DeleteUserCascadesToTasks(t *testing.T) {
	_, s := newSQLiteStorages(t)
	ctx := context.Background()

	alice := mustCreateUser(t, s, "alice")
	bob := mustCreateUser(t, s, "bob")
	task := mustCreateTask(t, s, alice.UserID, "a1")
	mustCreateTask(t, s, bob.UserID, "b1")

	require.NoError(t, s.UserRepository.DeleteUser(ctx, alice.UserID))

	_, err := s.TaskRepository.GetTaskByID(ctx, task.TaskID)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	bobTasks, err := s.TaskRepository.ListTasks(ctx, models.TaskFilter{OwnerID: bob.UserID, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, bobTasks, 1)

	assert.ErrorIs(t, s.UserRepository.DeleteUser(ctx, alice.UserID), ErrNoUserWasFound)
}

// ─── tasks ───────────────────────────────────────────────────────────────────

func TestSQLite_TaskCRUD(t *testing.T) {
	_, s := newSQLiteStorages(t)
	ctx := context.Background()
	alice := mustCreateUser(t, s, "alice")

	created := mustCreateTask(t, s, alice.UserID, "write report")
	assert.False(t, created.Done)
	assert.False(t, created.CreatedAt.IsZero())

	updated, err := s.TaskRepository.UpdateTask(ctx, models.Task{TaskID: created.TaskID, Title: "final report", Content: "v2", Done: true})
	require.NoError(t, err)
	assert.Equal(t, "final report", updated.Title)
	assert.True(t, updated.Done)
	assert.Equal(t, alice.UserID, updated.OwnerID)

	require.NoError(t, s.TaskRepository.UpdateTaskStatus(ctx, created.TaskID, false))
	got, err := s.TaskRepository.GetTaskByID(ctx, created.TaskID)
	require.NoError(t, err)
	assert.False(t, got.Done)

	require.NoError(t, s.TaskRepository.DeleteTask(ctx, created.TaskID))
	assert.ErrorIs(t, s.TaskRepository.DeleteTask(ctx, created.TaskID), ErrTaskNotFound)
	assert.ErrorIs(t, s.TaskRepository.UpdateTaskStatus(ctx, created.TaskID, true), ErrTaskNotFound)
	_, err = s.TaskRepository.UpdateTask(ctx, models.Task{TaskID: created.TaskID, Title: "x", Content: "y"})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestSQLite_CreateTaskUnknownOwner(t *testing.T) {
	_, s := newSQLiteStorages(t)

	_, err := s.TaskRepository.CreateTask(context.Background(), models.Task{Title: "t", Content: "c", OwnerID: 404})
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestSQLite_ListTasksPaginationAndSearch(t *testing.T) {
	_, s := newSQLiteStorages(t)
	ctx := context.Background()
	alice := mustCreateUser(t, s, "alice")
	bob := mustCreateUser(t, s, "bob")

	for i := 1; i <= 5; i++ {
		mustCreateTask(t, s, alice.UserID, fmt.Sprintf("task %d", i))
	}
	mustCreateTask(t, s, alice.UserID, "Groceries")
	mustCreateTask(t, s, bob.UserID, "task of bob")

	page, err := s.TaskRepository.ListTasks(ctx, models.TaskFilter{OwnerID: alice.UserID, Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "task 2", page[0].Title)
	assert.Equal(t, "task 3", page[1].Title)
	assert.Less(t, page[0].TaskID, page[1].TaskID)

	matched, err := s.TaskRepository.ListTasks(ctx, models.TaskFilter{OwnerID: alice.UserID, Search: "task", Limit: 10})
	require.NoError(t, err)
	assert.Len(t, matched, 5)
	for _, task := range matched {
		assert.Equal(t, alice.UserID, task.OwnerID)
	}

	// substring match is case-sensitive
	lower, err := s.TaskRepository.ListTasks(ctx, models.TaskFilter{OwnerID: alice.UserID, Search: "groceries", Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, lower)

	upper, err := s.TaskRepository.ListTasks(ctx, models.TaskFilter{OwnerID: alice.UserID, Search: "rocer", Limit: 10})
	require.NoError(t, err)
	assert.Len(t, upper, 1)

	beyond, err := s.TaskRepository.ListTasks(ctx, models.TaskFilter{OwnerID: alice.UserID, Limit: 10, Offset: 100})
	require.NoError(t, err)
	assert.Empty(t, beyond)
}

func TestSQLite_CopyTasks(t *testing.T) {
	_, s := newSQLiteStorages(t)
	ctx := context.Background()
	alice := mustCreateUser(t, s, "alice")
	bob := mustCreateUser(t, s, "bob")

	a1 := mustCreateTask(t, s, alice.UserID, "a1")
	mustCreateTask(t, s, alice.UserID, "a2")
	require.NoError(t, s.TaskRepository.UpdateTaskStatus(ctx, a1.TaskID, true))

	affected, err := s.TaskRepository.CopyTasks(ctx, alice.UserID, bob.UserID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	bobTasks, err := s.TaskRepository.ListTasks(ctx, models.TaskFilter{OwnerID: bob.UserID, Limit: 10})
	require.NoError(t, err)
	require.Len(t, bobTasks, 2)
	assert.Equal(t, "a1", bobTasks[0].Title)
	assert.Equal(t, "content of a1", bobTasks[0].Content)
	assert.True(t, bobTasks[0].Done)
	assert.NotEqual(t, a1.TaskID, bobTasks[0].TaskID)
	assert.Equal(t, "a2", bobTasks[1].Title)

	// source untouched
	aliceTasks, err := s.TaskRepository.ListTasks(ctx, models.TaskFilter{OwnerID: alice.UserID, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, aliceTasks, 2)
}

func TestSQLite_CopyTasksToMissingUser(t *testing.T) {
	_, s := newSQLiteStorages(t)
	alice := mustCreateUser(t, s, "alice")
	mustCreateTask(t, s, alice.UserID, "a1")

	_, err := s.TaskRepository.CopyTasks(context.Background(), alice.UserID, 404)
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

// TestSQLite_DeleteOwnedTasksRemovesAllOfOwner documents that the id filter
// is the owner's own id set, so every task of the owner is removed while
// copies held by other users stay.
func TestSQLite_DeleteOwnedTasksRemovesAllOfOwner(t *testing.T) {
	_, s := newSQLiteStorages(t)
	ctx := context.Background()
	alice := mustCreateUser(t, s, "alice")
	bob := mustCreateUser(t, s, "bob")

	mustCreateTask(t, s, alice.UserID, "a1")
	mustCreateTask(t, s, alice.UserID, "a2")
	mustCreateTask(t, s, bob.UserID, "b1")
	_, err := s.TaskRepository.CopyTasks(ctx, alice.UserID, bob.UserID)
	require.NoError(t, err)

	affected, err := s.TaskRepository.DeleteOwnedTasks(ctx, alice.UserID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	aliceTasks, err := s.TaskRepository.ListTasks(ctx, models.TaskFilter{OwnerID: alice.UserID, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, aliceTasks)

	bobTasks, err := s.TaskRepository.ListTasks(ctx, models.TaskFilter{OwnerID: bob.UserID, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, bobTasks, 3)
}

// ─── transactions ────────────────────────────────────────────────────────────

func TestSQLite_WithTxCommits(t *testing.T) {
	db, s := newSQLiteStorages(t)
	ctx := context.Background()
	alice := mustCreateUser(t, s, "alice")

	err := db.WithTx(ctx, func(ctx context.Context, repos Repositories) error {
		_, err := repos.TaskRepository.CreateTask(ctx, models.Task{Title: "t", Content: "c", OwnerID: alice.UserID})
		return err
	})
	require.NoError(t, err)

	tasks, err := s.TaskRepository.ListTasks(ctx, models.TaskFilter{OwnerID: alice.UserID, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestSQLite_WithTxRollsBackOnError(t *testing.T) {
	db, s := newSQLiteStorages(t)
	ctx := context.Background()
	alice := mustCreateUser(t, s, "alice")
	bob := mustCreateUser(t, s, "bob")
	mustCreateTask(t, s, alice.UserID, "a1")

	sentinel := errors.New("abort")
	err := db.WithTx(ctx, func(ctx context.Context, repos Repositories) error {
		if _, err := repos.TaskRepository.CopyTasks(ctx, alice.UserID, bob.UserID); err != nil {
			return err
		}
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)

	bobTasks, err := s.TaskRepository.ListTasks(ctx, models.TaskFilter{OwnerID: bob.UserID, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, bobTasks)
}

func TestSQLite_WithTxRollsBackOnPanic(t *testing.T) {
	db, s := newSQLiteStorages(t)
	ctx := context.Background()
	alice := mustCreateUser(t, s, "alice")

	assert.PanicsWithValue(t, "boom", func() {
		_ = db.WithTx(ctx, func(ctx context.Context, repos Repositories) error {
			_, err := repos.TaskRepository.CreateTask(ctx, models.Task{Title: "t", Content: "c", OwnerID: alice.UserID})
			require.NoError(t, err)
			panic("boom")
		})
	})

	tasks, err := s.TaskRepository.ListTasks(ctx, models.TaskFilter{OwnerID: alice.UserID, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
