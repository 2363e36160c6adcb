// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-task-keeper/internal/logger"

// Repositories is a pair of repositories sharing one [DBTX], either the
// connection pool or an open transaction.
type Repositories struct {
	UserRepository UserRepository
	TaskRepository TaskRepository
}

func (db *DB) repositories(conn DBTX, logger *logger.Logger) Repositories {
	return Repositories{
		UserRepository: &userRepository{
			db:         conn,
			classifier: db.errorClassificator,
			logger:     logger,
		},
		TaskRepository: &taskRepository{
			db:         conn,
			classifier: db.errorClassificator,
			dialect:    db.dialect,
			logger:     logger,
		},
	}
}
