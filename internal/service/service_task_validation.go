// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
)

// TaskValidationService rejects malformed task requests before the inner
// TaskService touches the store. Every rejection wraps ErrInvalidDataProvided
// together with the validators sentinel that failed.
//
// Task ids are not checked here: an id that matches no row, zero and
// negative ones included, is left to the store and reported as not found.
type TaskValidationService struct {
	inner     TaskService
	validator validators.Validator
}

func NewTaskValidationService() TaskServiceWrapper {
	return &TaskValidationService{
		validator: validators.NewTaskValidator(),
	}
}

func (v *TaskValidationService) List(ctx context.Context, ownerID int64, req models.TaskListRequest) ([]models.Task, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.List(ctx, ownerID, req)
}

func (v *TaskValidationService) Get(ctx context.Context, ownerID, taskID int64) (models.Task, error) {
	return v.inner.Get(ctx, ownerID, taskID)
}

func (v *TaskValidationService) Create(ctx context.Context, ownerID int64, req models.TaskRequest) (models.Task, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Create(ctx, ownerID, req)
}

func (v *TaskValidationService) Update(ctx context.Context, ownerID, taskID int64, req models.TaskRequest) (models.Task, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Update(ctx, ownerID, taskID, req)
}

func (v *TaskValidationService) PatchStatus(ctx context.Context, ownerID, taskID int64, done bool) (models.StatusMessage, error) {
	return v.inner.PatchStatus(ctx, ownerID, taskID, done)
}

func (v *TaskValidationService) Delete(ctx context.Context, ownerID, taskID int64) error {
	return v.inner.Delete(ctx, ownerID, taskID)
}

func (v *TaskValidationService) Share(ctx context.Context, ownerID int64, req models.ShareRequest) (models.ShareResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ShareResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Share(ctx, ownerID, req)
}

func (v *TaskValidationService) Wrap(inner TaskService) TaskService {
	v.inner = inner
	return v
}
