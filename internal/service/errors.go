// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid credentials")

	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrTokenIsInvalid      = errors.New("token is invalid")
	ErrTokenIsExpired      = errors.New("token is expired")
	ErrUnauthenticated     = errors.New("unauthenticated")

	ErrUnauthorizedAccessToDifferentUserData = errors.New("access to a different user's data is forbidden")
	ErrInvalidTarget                         = errors.New("tasks cannot be shared with their own owner")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
