// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

// Field names understood by [TaskValidator].
const (
	FieldTitle   = "title"
	FieldContent = "content"
	FieldLimit   = "limit"
	FieldSkip    = "skip"
	FieldShare   = "share"
)

// TaskValidator validates task payloads, listing parameters and share
// requests.
type TaskValidator struct{}

// NewTaskValidator returns a [Validator] for task requests.
func NewTaskValidator() Validator {
	return &TaskValidator{}
}

// Validate supports models.TaskRequest, models.TaskListRequest and
// models.ShareRequest (value or pointer).
func (v *TaskValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TaskRequest:
		return v.validateTaskRequest(value, fields...)
	case *models.TaskRequest:
		return v.validateTaskRequest(*value, fields...)

	case models.TaskListRequest:
		return v.validateListRequest(value, fields...)
	case *models.TaskListRequest:
		return v.validateListRequest(*value, fields...)

	case models.ShareRequest:
		return v.validateShareRequest(value, fields...)
	case *models.ShareRequest:
		return v.validateShareRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateTaskRequest only checks presence. An empty title or content is a
// valid value.
func (v *TaskValidator) validateTaskRequest(req models.TaskRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if req.Title == nil {
				return ErrMissingTitle
			}
		case FieldContent:
			if req.Content == nil {
				return ErrMissingContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TaskValidator) validateListRequest(req models.TaskListRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLimit, FieldSkip}
	}

	for _, f := range fields {
		switch f {
		case FieldLimit:
			if req.Limit < 0 {
				return ErrNegativeLimit
			}
			if req.Limit > models.MaxTaskLimit {
				return ErrLimitTooLarge
			}
		case FieldSkip:
			if req.Skip < 0 {
				return ErrNegativeSkip
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TaskValidator) validateShareRequest(req models.ShareRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldShare}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		case FieldShare:
			if req.Share == nil {
				return ErrMissingShareFlag
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
