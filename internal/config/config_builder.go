// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

const (
	defaultTokenAlgorithm           = "HS256"
	defaultAccessTokenExpireMinutes = 30
	defaultPasswordHashCost         = 10
	defaultLogLevel                 = "info"
	defaultDriver                   = DriverPostgres
	defaultMaxOpenConns             = 10
	defaultHTTPAddress              = "localhost:8080"
	defaultShutdownTimeout          = 10 * time.Second
)

type configBuilder struct {
	configs  []*StructuredConfig
	defaults *StructuredConfig
	err      error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges collected sources so that later ones override earlier
// non-zero fields, fills the remaining gaps from defaults and validates.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if b.defaults != nil {
		if err := mergo.Merge(config, b.defaults); err != nil {
			return nil, fmt.Errorf("error applying default configs: %w", err)
		}
		if err := config.validate(); err != nil {
			return nil, err
		}
	}

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg, err := parseEnv()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagCfg, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagCfg)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}

// withDefaults enables defaults and validation for the final config.
func (b *configBuilder) withDefaults() *configBuilder {
	b.defaults = &StructuredConfig{
		App: App{
			TokenAlgorithm:           defaultTokenAlgorithm,
			AccessTokenExpireMinutes: defaultAccessTokenExpireMinutes,
			PasswordHashCost:         defaultPasswordHashCost,
			LogLevel:                 defaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver:       defaultDriver,
				MaxOpenConns: defaultMaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			ShutdownTimeout: defaultShutdownTimeout,
		},
	}
	return b
}
