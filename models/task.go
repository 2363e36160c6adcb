// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Task is a single to-do item. Every task has exactly one owner; deleting the
// owner deletes the task as well.
type Task struct {
	// TaskID is the server-assigned unique identifier of the task.
	TaskID int64 `json:"id"`

	// Title is a short headline, possibly empty. List filtering matches on it.
	Title string `json:"title"`

	// Content is the free-text body of the task.
	Content string `json:"content"`

	// Done reports whether the task has been completed. Defaults to false.
	Done bool `json:"done"`

	// CreatedAt is the timestamp when the row was inserted.
	CreatedAt time.Time `json:"created_at"`

	// OwnerID references the owning [User].
	OwnerID int64 `json:"owner_id"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}

// ToResponse converts the task into its public representation, embedding the
// owner's public profile.
func (t Task) ToResponse(owner User) TaskResponse {
	return TaskResponse{
		TaskID:    t.TaskID,
		Title:     t.Title,
		Content:   t.Content,
		Done:      t.Done,
		CreatedAt: t.CreatedAt,
		OwnerID:   t.OwnerID,
		Owner:     owner.ToResponse(),
	}
}

// TaskFilter narrows a task listing to a single owner.
type TaskFilter struct {
	// OwnerID is the owner whose tasks are listed. Required.
	OwnerID int64

	// Search is matched as a substring of the title. Empty matches all.
	Search string

	// Limit caps the number of returned rows.
	Limit uint64

	// Offset skips that many rows of the id-ordered result.
	Offset uint64
}
