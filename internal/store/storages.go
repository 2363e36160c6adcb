// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-task-keeper/internal/logger"

// Storages is the set of persistence components the service layer depends on.
type Storages struct {
	UserRepository UserRepository
	TaskRepository TaskRepository
	Transactor     Transactor
}

// NewStorages wires the repositories of db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	repos := db.repositories(db.DB, logger)
	return &Storages{
		UserRepository: repos.UserRepository,
		TaskRepository: repos.TaskRepository,
		Transactor:     db,
	}
}
