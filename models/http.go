// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the body of POST /api/user/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/user/login. The handler accepts it
// either as JSON or as an OAuth2-style form (username, password).
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TaskRequest carries the mutable fields of a task for create and full
// update. Title and Content must be present in the body but may be empty
// strings. Done defaults to false when omitted.
type TaskRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	Done    bool    `json:"done"`
}

// NewTaskRequest returns a TaskRequest with both text fields set.
func NewTaskRequest(title, content string, done bool) TaskRequest {
	return TaskRequest{Title: &title, Content: &content, Done: done}
}

// TaskStatusRequest is the body of PATCH /api/tasks/{id}.
type TaskStatusRequest struct {
	Done bool `json:"done"`
}

// ShareRequest is the body of POST /api/tasks/share.
//
// With Share set to true every task of the caller is copied to the user
// registered under Email. With Share set to false the caller's own tasks are
// removed. Share has no default: a body without it is rejected, since
// unsharing deletes data.
type ShareRequest struct {
	Email string `json:"email"`
	Share *bool  `json:"share,omitempty"`
}

// NewShareRequest returns a ShareRequest with the share flag set.
func NewShareRequest(email string, share bool) ShareRequest {
	return ShareRequest{Email: email, Share: &share}
}

// Paging defaults and bounds applied to GET /api/tasks. A limit above
// MaxTaskLimit is rejected rather than clamped.
const (
	DefaultTaskLimit = 10
	MaxTaskLimit     = 100
)

// TaskListRequest carries the query parameters of GET /api/tasks before they
// are turned into a [TaskFilter]. Limit and Skip are signed so that negative
// input can be rejected instead of wrapping around.
type TaskListRequest struct {
	Search string
	Limit  int
	Skip   int
}
