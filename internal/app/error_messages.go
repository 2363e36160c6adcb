// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// task keeper server handlers and its API client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgWelcome is served on the API root.
	MsgWelcome = "Welcome to my API"

	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidDataProvided is returned when a request fails validation
	// (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidID is returned when a path or query parameter that must be an
	// integer cannot be parsed as one.
	MsgInvalidID = "value is not a valid integer"

	// MsgInvalidCredentials is returned when the supplied username/password
	// combination does not match any existing account.
	MsgInvalidCredentials = "invalid credentials"

	// MsgUnauthenticated is returned when a bearer token is missing,
	// malformed, expired, or refers to a deleted account.
	MsgUnauthenticated = "could not validate credentials"

	// MsgAccessDenied is returned when the authenticated user attempts to
	// access or modify a task that belongs to a different user.
	MsgAccessDenied = "access denied"

	// MsgUserNotFound is returned when a user lookup by id or e-mail finds
	// nothing.
	MsgUserNotFound = "user not found"

	// MsgTaskNotFound is returned when a task with the requested id does not
	// exist.
	MsgTaskNotFound = "task not found"

	// MsgUserAlreadyExists is returned when a registration attempt is
	// rejected because the username or e-mail is already in use.
	MsgUserAlreadyExists = "username or email already registered"

	// MsgInvalidShareTarget is returned when a user tries to share tasks with
	// themselves.
	MsgInvalidShareTarget = "cannot share tasks with yourself"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
