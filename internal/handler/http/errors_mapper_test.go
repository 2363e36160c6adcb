// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "unauthenticated",
			err:         service.ErrUnauthenticated,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: app.MsgUnauthenticated,
		},
		{
			name:        "deleted user behind a valid token is 401, not 404",
			err:         fmt.Errorf("%w: %w", service.ErrUnauthenticated, store.ErrNoUserWasFound),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: app.MsgUnauthenticated,
		},
		{
			name:        "expired token",
			err:         fmt.Errorf("%w: %w", service.ErrUnauthenticated, service.ErrTokenIsExpired),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: app.MsgUnauthenticated,
		},
		{
			name:        "missing header",
			err:         ErrEmptyAuthorizationHeader,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: app.MsgUnauthenticated,
		},
		{
			name:        "malformed id",
			err:         fmt.Errorf("%w: id \"abc\"", ErrMalformedID),
			wantStatus:  http.StatusUnprocessableEntity,
			wantMessage: app.MsgInvalidID,
		},
		{
			name:        "invalid json",
			err:         ErrInvalidJSON,
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgInvalidJSON,
		},
		{
			name:        "validation error exposes its text",
			err:         fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, errors.New("title is empty")),
			wantStatus:  http.StatusBadRequest,
			wantMessage: service.ErrInvalidDataProvided.Error() + ": title is empty",
		},
		{
			name:        "share with self",
			err:         service.ErrInvalidTarget,
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgInvalidShareTarget,
		},
		{
			name:        "wrong password",
			err:         service.ErrInvalidCredentials,
			wantStatus:  http.StatusForbidden,
			wantMessage: app.MsgInvalidCredentials,
		},
		{
			name:        "foreign task",
			err:         service.ErrUnauthorizedAccessToDifferentUserData,
			wantStatus:  http.StatusForbidden,
			wantMessage: app.MsgAccessDenied,
		},
		{
			name:        "duplicate user",
			err:         fmt.Errorf("create: %w", store.ErrUserAlreadyExists),
			wantStatus:  http.StatusConflict,
			wantMessage: app.MsgUserAlreadyExists,
		},
		{
			name:        "user not found",
			err:         store.ErrNoUserWasFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: app.MsgUserNotFound,
		},
		{
			name:        "task not found",
			err:         store.ErrTaskNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: app.MsgTaskNotFound,
		},
		{
			name:        "unknown error is hidden",
			err:         errors.New("connection reset by peer"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := statusFromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}

func TestWriteError(t *testing.T) {
	t.Run("401 carries WWW-Authenticate", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)

		writeError(rec, req, "test", service.ErrUnauthenticated)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
		assert.Equal(t, app.MsgUnauthenticated, strings.TrimSpace(rec.Body.String()))
	})

	t.Run("other statuses have no challenge", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/tasks/1", nil)

		writeError(rec, req, "test", store.ErrTaskNotFound)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Header().Get("WWW-Authenticate"))
	})
}
