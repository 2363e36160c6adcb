// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername = errors.New("username is required")
	ErrEmptyEmail    = errors.New("email is required")
	ErrInvalidEmail  = errors.New("email is malformed")
	ErrEmptyPassword = errors.New("password is required")

	ErrMissingTitle     = errors.New("title is required")
	ErrMissingContent   = errors.New("content is required")
	ErrNegativeLimit    = errors.New("limit must not be negative")
	ErrLimitTooLarge    = fmt.Errorf("limit must not exceed %d", models.MaxTaskLimit)
	ErrNegativeSkip     = errors.New("skip must not be negative")
	ErrMissingShareFlag = errors.New("share flag is required")
	ErrInvalidUserID    = errors.New("invalid user ID")
)
