// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/migrations"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTaskRepo(t *testing.T) (*taskRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := &taskRepository{
		db:         db,
		classifier: NewPostgresErrorClassifier(),
		dialect:    migrations.DialectPostgres,
		logger:     logger.Nop(),
	}
	return repo, mock
}

func taskRows() *sqlmock.Rows {
	return sqlmock.NewRows(taskColumns)
}

// ─── CreateTask ──────────────────────────────────────────────────────────────

func TestCreateTask_Success(t *testing.T) {
	repo, mock := newTestTaskRepo(t)
	now := time.Now().UTC().Truncate(time.Second)

	mock.ExpectQuery(regexp.QuoteMeta(createTask)).
		WithArgs("title", "content", false, int64(2)).
		WillReturnRows(taskRows().AddRow(10, "title", "content", false, now, 2))

	task, err := repo.CreateTask(context.Background(), models.Task{Title: "title", Content: "content", OwnerID: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(10), task.TaskID)
	assert.Equal(t, int64(2), task.OwnerID)
	assert.Equal(t, now, task.CreatedAt)
}

func TestCreateTask_UnknownOwner(t *testing.T) {
	repo, mock := newTestTaskRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(createTask)).
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateTask(context.Background(), models.Task{Title: "t", Content: "c", OwnerID: 99})
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

// ─── GetTaskByID ─────────────────────────────────────────────────────────────

func TestGetTaskByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newTestTaskRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(getTaskByID)).
			WithArgs(int64(5)).
			WillReturnRows(taskRows().AddRow(5, "t", "c", true, time.Now(), 1))

		task, err := repo.GetTaskByID(context.Background(), 5)
		require.NoError(t, err)
		assert.True(t, task.Done)
		assert.Equal(t, int64(1), task.OwnerID)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestTaskRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(getTaskByID)).
			WithArgs(int64(5)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetTaskByID(context.Background(), 5)
		assert.ErrorIs(t, err, ErrTaskNotFound)
	})
}

// ─── ListTasks ───────────────────────────────────────────────────────────────

func TestListTasks_WithSearch(t *testing.T) {
	repo, mock := newTestTaskRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT task_id, title, content, done, created_at, owner_id FROM tasks WHERE owner_id = $1 AND strpos(title, $2) > 0 ORDER BY task_id LIMIT 10 OFFSET 5",
	)).
		WithArgs(int64(1), "milk").
		WillReturnRows(taskRows().
			AddRow(1, "buy milk", "", false, now, 1).
			AddRow(2, "milk again", "", true, now, 1))

	tasks, err := repo.ListTasks(context.Background(), models.TaskFilter{OwnerID: 1, Search: "milk", Limit: 10, Offset: 5})
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "buy milk", tasks[0].Title)
	assert.True(t, tasks[1].Done)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTasks_Empty(t *testing.T) {
	repo, mock := newTestTaskRepo(t)

	mock.ExpectQuery("SELECT .* FROM tasks").
		WithArgs(int64(1)).
		WillReturnRows(taskRows())

	tasks, err := repo.ListTasks(context.Background(), models.TaskFilter{OwnerID: 1, Limit: 10})
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestListTasks_QueryError(t *testing.T) {
	repo, mock := newTestTaskRepo(t)

	mock.ExpectQuery("SELECT .* FROM tasks").WillReturnError(errors.New("boom"))

	_, err := repo.ListTasks(context.Background(), models.TaskFilter{OwnerID: 1, Limit: 10})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListTasks_ScanError(t *testing.T) {
	repo, mock := newTestTaskRepo(t)

	mock.ExpectQuery("SELECT .* FROM tasks").
		WillReturnRows(taskRows().AddRow("not-a-number", "t", "c", false, time.Now(), 1))

	_, err := repo.ListTasks(context.Background(), models.TaskFilter{OwnerID: 1, Limit: 10})
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestListTasks_RowsError(t *testing.T) {
	repo, mock := newTestTaskRepo(t)

	mock.ExpectQuery("SELECT .* FROM tasks").
		WillReturnRows(taskRows().
			AddRow(1, "t", "c", false, time.Now(), 1).
			RowError(0, errors.New("broken stream")))

	_, err := repo.ListTasks(context.Background(), models.TaskFilter{OwnerID: 1, Limit: 10})
	assert.ErrorIs(t, err, ErrScanningRows)
}

// ─── UpdateTask / UpdateTaskStatus / DeleteTask ──────────────────────────────

func TestUpdateTask(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		repo, mock := newTestTaskRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(updateTask)).
			WithArgs("new", "body", true, int64(4)).
			WillReturnRows(taskRows().AddRow(4, "new", "body", true, time.Now(), 1))

		task, err := repo.UpdateTask(context.Background(), models.Task{TaskID: 4, Title: "new", Content: "body", Done: true})
		require.NoError(t, err)
		assert.Equal(t, "new", task.Title)
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newTestTaskRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(updateTask)).WillReturnError(sql.ErrNoRows)

		_, err := repo.UpdateTask(context.Background(), models.Task{TaskID: 4})
		assert.ErrorIs(t, err, ErrTaskNotFound)
	})
}

func TestUpdateTaskStatus(t *testing.T) {
	repo, mock := newTestTaskRepo(t)
	mock.ExpectExec(regexp.QuoteMeta(updateTaskStatus)).WithArgs(true, int64(4)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(updateTaskStatus)).WithArgs(false, int64(5)).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.UpdateTaskStatus(context.Background(), 4, true))
	assert.ErrorIs(t, repo.UpdateTaskStatus(context.Background(), 5, false), ErrTaskNotFound)
}

func TestDeleteTask(t *testing.T) {
	repo, mock := newTestTaskRepo(t)
	mock.ExpectExec(regexp.QuoteMeta(deleteTask)).WithArgs(int64(4)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(deleteTask)).WithArgs(int64(5)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(deleteTask)).WithArgs(int64(6)).WillReturnError(errors.New("boom"))

	assert.NoError(t, repo.DeleteTask(context.Background(), 4))
	assert.ErrorIs(t, repo.DeleteTask(context.Background(), 5), ErrTaskNotFound)
	assert.ErrorIs(t, repo.DeleteTask(context.Background(), 6), ErrExecutingQuery)
}

// ─── CopyTasks / DeleteOwnedTasks ────────────────────────────────────────────

func TestCopyTasks(t *testing.T) {
	repo, mock := newTestTaskRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO tasks (title,content,done,owner_id) SELECT")).
		WithArgs(int64(2), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	affected, err := repo.CopyTasks(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), affected)
}

func TestCopyTasks_TargetVanished(t *testing.T) {
	repo, mock := newTestTaskRepo(t)

	mock.ExpectExec("INSERT INTO tasks").WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CopyTasks(context.Background(), 1, 2)
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestDeleteOwnedTasks(t *testing.T) {
	repo, mock := newTestTaskRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM tasks WHERE owner_id = $1 AND task_id IN (SELECT task_id FROM tasks WHERE owner_id = $2)")).
		WithArgs(int64(1), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 4))

	affected, err := repo.DeleteOwnedTasks(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), affected)
}

func TestDeleteOwnedTasks_Error(t *testing.T) {
	repo, mock := newTestTaskRepo(t)

	mock.ExpectExec("DELETE FROM tasks").WillReturnError(errors.New("boom"))

	_, err := repo.DeleteOwnedTasks(context.Background(), 1)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
