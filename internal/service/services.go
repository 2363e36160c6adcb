// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
)

type Services struct {
	TokenService   TokenService
	AuthService    AuthService
	TaskService    TaskService
	AppInfoService AppInfoService
}

// NewServices wires the services over storages. Account and task services
// are returned behind their validation wrappers.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	tokenService := NewTokenService(cfg.App, logger)
	hasher := utils.NewBcryptHasher(cfg.App.PasswordHashCost)

	authService := NewAuthValidationService().Wrap(
		NewAuthService(storages.UserRepository, tokenService, hasher, logger),
	)
	taskService := NewTaskValidationService().Wrap(
		NewTaskService(storages.TaskRepository, storages.Transactor, logger),
	)

	return &Services{
		TokenService:   tokenService,
		AuthService:    authService,
		TaskService:    taskService,
		AppInfoService: appInfoService,
	}, nil
}
