// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/store"
)

// errorStatus binds a sentinel error to a response status and body.
// An empty message means the error text itself is sent.
type errorStatus struct {
	err     error
	status  int
	message string
}

// errorStatusMap is checked in order; the first matching entry wins.
// Authentication comes first because ErrUnauthenticated may wrap
// store.ErrNoUserWasFound for deleted accounts.
var errorStatusMap = []errorStatus{
	{service.ErrUnauthenticated, http.StatusUnauthorized, app.MsgUnauthenticated},
	{service.ErrTokenIsExpired, http.StatusUnauthorized, app.MsgUnauthenticated},
	{service.ErrTokenIsInvalid, http.StatusUnauthorized, app.MsgUnauthenticated},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, app.MsgUnauthenticated},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, app.MsgUnauthenticated},
	{ErrEmptyToken, http.StatusUnauthorized, app.MsgUnauthenticated},

	{ErrMalformedID, http.StatusUnprocessableEntity, app.MsgInvalidID},
	{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidJSON},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, ""},
	{service.ErrInvalidTarget, http.StatusBadRequest, app.MsgInvalidShareTarget},

	{service.ErrInvalidCredentials, http.StatusForbidden, app.MsgInvalidCredentials},
	{service.ErrUnauthorizedAccessToDifferentUserData, http.StatusForbidden, app.MsgAccessDenied},

	{store.ErrUserAlreadyExists, http.StatusConflict, app.MsgUserAlreadyExists},
	{store.ErrNoUserWasFound, http.StatusNotFound, app.MsgUserNotFound},
	{store.ErrTaskNotFound, http.StatusNotFound, app.MsgTaskNotFound},
}

func statusFromError(err error) (int, string) {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.err) {
			if e.message == "" {
				return e.status, err.Error()
			}
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and answers with the status mapped from it.
// Unmapped errors become 500 and their text is not exposed.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	log := logger.FromRequest(r)
	status, message := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
	} else {
		log.Info().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	http.Error(w, message, status)
}
