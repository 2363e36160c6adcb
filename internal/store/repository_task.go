// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

// taskRepository is the SQL implementation of [TaskRepository] over the
// "tasks" table. The dialect selects backend-specific SQL functions.
type taskRepository struct {
	db         DBTX
	classifier ErrorClassificator
	dialect    string
	logger     *logger.Logger
}

// NewTaskRepository constructs a [TaskRepository] backed by db.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return db.repositories(db.DB, logger).TaskRepository
}

// CreateTask inserts task and returns it with TaskID and CreatedAt set.
// A missing owner yields [ErrNoUserWasFound].
func (r *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createTask, task.Title, task.Content, task.Done, task.OwnerID)

	created, err := scanTask(row)
	if err != nil {
		if r.classifier.Classify(err) == ForeignKeyViolation {
			log.Warn().Str("func", "*taskRepository.CreateTask").Int64("owner_id", task.OwnerID).Msg("owner does not exist")
			return models.Task{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*taskRepository.CreateTask").Int64("owner_id", task.OwnerID).Msg("error creating task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// GetTaskByID returns the task with the given id or [ErrTaskNotFound].
func (r *taskRepository) GetTaskByID(ctx context.Context, taskID int64) (models.Task, error) {
	log := logger.FromContext(ctx)

	task, err := scanTask(r.db.QueryRowContext(ctx, getTaskByID, taskID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}
		log.Err(err).Str("func", "*taskRepository.GetTaskByID").Int64("task_id", taskID).Msg("error getting task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return task, nil
}

// ListTasks returns the tasks matching filter ordered by id. An empty
// result is returned as an empty, non-nil slice.
func (r *taskRepository) ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTasksQuery(r.dialect, filter)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.ListTasks").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*taskRepository.ListTasks").
			Int64("owner_id", filter.OwnerID).
			Msg("failed to execute query for listing tasks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0, filter.Limit)
	for rows.Next() {
		var task models.Task
		if scanErr := rows.Scan(&task.TaskID, &task.Title, &task.Content, &task.Done, sqlTime{&task.CreatedAt}, &task.OwnerID); scanErr != nil {
			log.Err(scanErr).Str("func", "*taskRepository.ListTasks").Msg("failed to scan task row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		tasks = append(tasks, task)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*taskRepository.ListTasks").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return tasks, nil
}

// UpdateTask replaces title, content and done of task.TaskID and returns the
// stored row. OwnerID and CreatedAt are never changed.
func (r *taskRepository) UpdateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	updated, err := scanTask(r.db.QueryRowContext(ctx, updateTask, task.Title, task.Content, task.Done, task.TaskID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}
		log.Err(err).Str("func", "*taskRepository.UpdateTask").Int64("task_id", task.TaskID).Msg("error updating task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

// UpdateTaskStatus sets the done flag of the task.
func (r *taskRepository) UpdateTaskStatus(ctx context.Context, taskID int64, done bool) error {
	return r.execOnTask(ctx, "*taskRepository.UpdateTaskStatus", taskID, updateTaskStatus, done, taskID)
}

// DeleteTask permanently removes the task.
func (r *taskRepository) DeleteTask(ctx context.Context, taskID int64) error {
	return r.execOnTask(ctx, "*taskRepository.DeleteTask", taskID, deleteTask, taskID)
}

// execOnTask runs a single-row statement and reports [ErrTaskNotFound] when
// it touched nothing.
func (r *taskRepository) execOnTask(ctx context.Context, funcName string, taskID int64, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("task_id", taskID).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// CopyTasks implements [TaskRepository].
func (r *taskRepository) CopyTasks(ctx context.Context, fromOwnerID, toOwnerID int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCopyTasksQuery(fromOwnerID, toOwnerID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.CopyTasks").Msg("failed to create query")
		return 0, err
	}

	affected, err := r.execCounting(ctx, query, args...)
	if err != nil {
		if r.classifier.Classify(err) == ForeignKeyViolation {
			return 0, ErrNoUserWasFound
		}
		log.Err(err).
			Str("func", "*taskRepository.CopyTasks").
			Int64("from_owner_id", fromOwnerID).
			Int64("to_owner_id", toOwnerID).
			Msg("error copying tasks")
		return 0, err
	}

	return affected, nil
}

// DeleteOwnedTasks implements [TaskRepository].
func (r *taskRepository) DeleteOwnedTasks(ctx context.Context, ownerID int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteOwnedTasksQuery(ownerID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteOwnedTasks").Msg("failed to create query")
		return 0, err
	}

	affected, err := r.execCounting(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteOwnedTasks").Int64("owner_id", ownerID).Msg("error deleting tasks")
		return 0, err
	}

	return affected, nil
}

func (r *taskRepository) execCounting(ctx context.Context, query string, args ...any) (int64, error) {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected, nil
}

func scanTask(row *sql.Row) (models.Task, error) {
	var task models.Task
	err := row.Scan(&task.TaskID, &task.Title, &task.Content, &task.Done, sqlTime{&task.CreatedAt}, &task.OwnerID)
	return task, err
}
