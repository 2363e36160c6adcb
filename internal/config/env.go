// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the environment layer of the configuration. Variable names
// follow the `env` and `envPrefix` tags on [StructuredConfig]. The storage
// driver is matched case-insensitively, so STORAGE_DB_DRIVER=SQLite selects
// the sqlite backend.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("reading task keeper settings from environment: %w", err)
	}

	cfg.Storage.DB.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.DB.Driver))
	return &cfg, nil
}
