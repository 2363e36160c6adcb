// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
)

type taskService struct {
	taskRepository store.TaskRepository
	transactor     store.Transactor

	logger *logger.Logger
}

func NewTaskService(taskRepository store.TaskRepository, transactor store.Transactor, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		transactor:     transactor,
		logger:         logger,
	}
}

// List returns the owner's tasks whose title contains req.Search, ordered by
// id. Bounds on req.Limit are enforced by TaskValidationService.
func (s *taskService) List(ctx context.Context, ownerID int64, req models.TaskListRequest) ([]models.Task, error) {
	tasks, err := s.taskRepository.ListTasks(ctx, models.TaskFilter{
		OwnerID: ownerID,
		Search:  req.Search,
		Limit:   uint64(req.Limit),
		Offset:  uint64(req.Skip),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "taskService.List").Int64("owner_id", ownerID).Msg("listing tasks failed")
		return nil, fmt.Errorf("listing tasks failed: %w", err)
	}

	return tasks, nil
}

func (s *taskService) Get(ctx context.Context, ownerID, taskID int64) (models.Task, error) {
	return s.authorizedTask(ctx, "taskService.Get", ownerID, taskID)
}

func (s *taskService) Create(ctx context.Context, ownerID int64, req models.TaskRequest) (models.Task, error) {
	task, err := s.taskRepository.CreateTask(ctx, models.Task{
		Title:   stringValue(req.Title),
		Content: stringValue(req.Content),
		Done:    req.Done,
		OwnerID: ownerID,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "taskService.Create").Int64("owner_id", ownerID).Msg("task creation failed")
		return models.Task{}, fmt.Errorf("task creation failed: %w", err)
	}

	return task, nil
}

// Update replaces title, content and done of a task the caller owns.
func (s *taskService) Update(ctx context.Context, ownerID, taskID int64, req models.TaskRequest) (models.Task, error) {
	task, err := s.authorizedTask(ctx, "taskService.Update", ownerID, taskID)
	if err != nil {
		return models.Task{}, err
	}

	task.Title = stringValue(req.Title)
	task.Content = stringValue(req.Content)
	task.Done = req.Done

	updated, err := s.taskRepository.UpdateTask(ctx, task)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "taskService.Update").Int64("task_id", taskID).Msg("task update failed")
		return models.Task{}, fmt.Errorf("task update failed: %w", err)
	}

	return updated, nil
}

func (s *taskService) PatchStatus(ctx context.Context, ownerID, taskID int64, done bool) (models.StatusMessage, error) {
	if _, err := s.authorizedTask(ctx, "taskService.PatchStatus", ownerID, taskID); err != nil {
		return models.StatusMessage{}, err
	}

	if err := s.taskRepository.UpdateTaskStatus(ctx, taskID, done); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "taskService.PatchStatus").Int64("task_id", taskID).Msg("task status update failed")
		return models.StatusMessage{}, fmt.Errorf("task status update failed: %w", err)
	}

	state := "undone"
	if done {
		state = "done"
	}
	return models.StatusMessage{Message: fmt.Sprintf("task %d marked as %s", taskID, state)}, nil
}

func (s *taskService) Delete(ctx context.Context, ownerID, taskID int64) error {
	if _, err := s.authorizedTask(ctx, "taskService.Delete", ownerID, taskID); err != nil {
		return err
	}

	if err := s.taskRepository.DeleteTask(ctx, taskID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "taskService.Delete").Int64("task_id", taskID).Msg("task deletion failed")
		return fmt.Errorf("task deletion failed: %w", err)
	}

	return nil
}

// Share copies (*req.Share) or removes (!*req.Share) the owner's tasks in a
// single transaction. A nil req.Share is rejected before anything is read.
//
// The target is always resolved by e-mail first: an unknown address fails
// with store.ErrNoUserWasFound and the owner's own address with
// ErrInvalidTarget, in both cases before any task row is touched.
//
// Unsharing deletes every task owned by ownerID. Copies previously handed to
// the target are left alone: they belong to the target now.
func (s *taskService) Share(ctx context.Context, ownerID int64, req models.ShareRequest) (models.ShareResult, error) {
	log := logger.FromContext(ctx)

	if req.Share == nil {
		return models.ShareResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrMissingShareFlag)
	}
	share := *req.Share

	result := models.ShareResult{Shared: share, TargetEmail: req.Email}

	err := s.transactor.WithTx(ctx, func(ctx context.Context, repos store.Repositories) error {
		target, err := repos.UserRepository.FindUserByEmail(ctx, req.Email)
		if err != nil {
			return fmt.Errorf("share target lookup failed: %w", err)
		}
		if target.UserID == ownerID {
			return ErrInvalidTarget
		}

		if share {
			result.Affected, err = repos.TaskRepository.CopyTasks(ctx, ownerID, target.UserID)
		} else {
			result.Affected, err = repos.TaskRepository.DeleteOwnedTasks(ctx, ownerID)
		}
		if err != nil {
			return fmt.Errorf("share update failed: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "taskService.Share").Int64("owner_id", ownerID).Bool("share", share).Msg("share ended with error")
		return models.ShareResult{}, err
	}

	log.Info().Str("func", "taskService.Share").Int64("owner_id", ownerID).Bool("share", share).Int64("affected", result.Affected).Msg("share applied")
	return result, nil
}

// authorizedTask loads taskID and checks that ownerID may access it.
// A missing task wins over a foreign one.
func (s *taskService) authorizedTask(ctx context.Context, funcName string, ownerID, taskID int64) (models.Task, error) {
	log := logger.FromContext(ctx)

	task, err := s.taskRepository.GetTaskByID(ctx, taskID)
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("task_id", taskID).Msg("task lookup failed")
		return models.Task{}, fmt.Errorf("task lookup failed: %w", err)
	}

	if !canAccessTask(ownerID, task) {
		log.Warn().Str("func", funcName).Int64("task_id", taskID).Int64("actor_id", ownerID).Int64("owner_id", task.OwnerID).Msg("access to a foreign task denied")
		return models.Task{}, ErrUnauthorizedAccessToDifferentUserData
	}

	return task, nil
}

func stringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
