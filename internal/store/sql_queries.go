// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-task-keeper/migrations"
	"github.com/MKhiriev/go-task-keeper/models"
)

const (
	createUser = `INSERT INTO users (username, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, username, email, password_hash, created_at;`

	findUserByID = `SELECT user_id, username, email, password_hash, created_at
    FROM users
    WHERE user_id = $1;`

	findUserByUsername = `SELECT user_id, username, email, password_hash, created_at
    FROM users
    WHERE username = $1;`

	findUserByEmail = `SELECT user_id, username, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	deleteUser = `DELETE FROM users WHERE user_id = $1;`

	createTask = `INSERT INTO tasks (title, content, done, owner_id)
    VALUES ($1, $2, $3, $4)
    RETURNING task_id, title, content, done, created_at, owner_id;`

	getTaskByID = `SELECT task_id, title, content, done, created_at, owner_id
    FROM tasks
    WHERE task_id = $1;`

	updateTask = `UPDATE tasks
    SET title = $1, content = $2, done = $3
    WHERE task_id = $4
    RETURNING task_id, title, content, done, created_at, owner_id;`

	updateTaskStatus = `UPDATE tasks SET done = $1 WHERE task_id = $2;`

	deleteTask = `DELETE FROM tasks WHERE task_id = $1;`
)

var taskColumns = []string{"task_id", "title", "content", "done", "created_at", "owner_id"}

// titleContains returns a case-sensitive substring predicate on the title
// column for the given dialect.
func titleContains(dialect string) string {
	if dialect == migrations.DialectSQLite {
		return "instr(title, ?) > 0"
	}
	return "strpos(title, ?) > 0"
}

// buildListTasksQuery selects the owner's tasks ordered by id, narrowed by a
// title substring when filter.Search is set, with LIMIT/OFFSET pagination.
func buildListTasksQuery(dialect string, filter models.TaskFilter) (string, []any, error) {
	builder := sq.Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{"owner_id": filter.OwnerID})

	if filter.Search != "" {
		builder = builder.Where(titleContains(dialect), filter.Search)
	}

	query, args, err := builder.
		OrderBy("task_id").
		Limit(filter.Limit).
		Offset(filter.Offset).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildCopyTasksQuery duplicates every task of fromOwnerID for toOwnerID
// with a single INSERT ... SELECT. The new rows get fresh ids and creation
// timestamps.
func buildCopyTasksQuery(fromOwnerID, toOwnerID int64) (string, []any, error) {
	source := sq.Select("title", "content", "done").
		Column("CAST(? AS BIGINT)", toOwnerID).
		From("tasks").
		Where(sq.Eq{"owner_id": fromOwnerID}).
		OrderBy("task_id")

	query, args, err := sq.Insert("tasks").
		Columns("title", "content", "done", "owner_id").
		Select(source).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildDeleteOwnedTasksQuery removes the tasks of ownerID whose ids are among
// the ids owned by ownerID.
func buildDeleteOwnedTasksQuery(ownerID int64) (string, []any, error) {
	ownedIDs := sq.Select("task_id").
		From("tasks").
		Where(sq.Eq{"owner_id": ownerID})

	query, args, err := sq.Delete("tasks").
		Where(sq.Eq{"owner_id": ownerID}).
		Where(sq.Expr("task_id IN (?)", ownedIDs)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// sqlTime scans timestamps reported either as time.Time or, when SQLite
// loses the declared column type (e.g. in RETURNING), as text.
type sqlTime struct {
	t *time.Time
}

func (s sqlTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*s.t = v
		return nil
	case string:
		return s.parse(v)
	case []byte:
		return s.parse(string(v))
	case nil:
		*s.t = time.Time{}
		return nil
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (s sqlTime) parse(value string) error {
	value = strings.TrimSuffix(value, "Z")
	for _, format := range sqlite3.SQLiteTimestampFormats {
		if parsed, err := time.ParseInLocation(format, value, time.UTC); err == nil {
			*s.t = parsed
			return nil
		}
	}
	return fmt.Errorf("unsupported timestamp format %q", value)
}
