// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// tokenService is the JWT implementation of TokenService.
type tokenService struct {
	// params holds the signing secret, algorithm, issuer and TTL.
	params utils.JWTParams

	// now is the clock used for iat/exp on issue and for expiry checks on
	// validation.
	now func() time.Time

	logger *logger.Logger
}

// NewTokenService builds a TokenService from the application config.
// A TTL of zero minutes produces tokens that are expired on arrival.
func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return newTokenService(utils.JWTParams{
		SignKey:   cfg.TokenSignKey,
		Algorithm: cfg.TokenAlgorithm,
		Issuer:    cfg.TokenIssuer,
		TTL:       cfg.TokenTTL(),
	}, time.Now, logger)
}

func newTokenService(params utils.JWTParams, now func() time.Time, logger *logger.Logger) *tokenService {
	return &tokenService{
		params: params,
		now:    now,
		logger: logger,
	}
}

func (t *tokenService) Issue(ctx context.Context, userID int64) (models.Token, error) {
	token, err := utils.GenerateJWTToken(t.params, userID, t.now())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "tokenService.Issue").Int64("user_id", userID).Msg("failed to sign token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (t *tokenService) Validate(ctx context.Context, tokenString string) (int64, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, t.params, t.now())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug().Str("func", "tokenService.Validate").Msg("token is expired")
			return 0, fmt.Errorf("%w: %w", ErrTokenIsExpired, err)
		}
		log.Debug().Err(err).Str("func", "tokenService.Validate").Msg("token is invalid")
		return 0, fmt.Errorf("%w: %w", ErrTokenIsInvalid, err)
	}

	return token.UserID, nil
}
