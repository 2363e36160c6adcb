// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/go-chi/chi/v5"
)

// decodeJSON decodes the request body into dst. Unknown fields are ignored.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// idFromURL parses the {id} path parameter.
func idFromURL(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q", ErrMalformedID, raw)
	}
	return id, nil
}

// queryInt returns the integer query parameter name, or def when it is
// absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrMalformedID, name, raw)
	}
	return v, nil
}

// taskListRequestFromURL reads limit, skip and search from the query string.
func taskListRequestFromURL(r *http.Request) (models.TaskListRequest, error) {
	limit, err := queryInt(r, "limit", models.DefaultTaskLimit)
	if err != nil {
		return models.TaskListRequest{}, err
	}
	skip, err := queryInt(r, "skip", 0)
	if err != nil {
		return models.TaskListRequest{}, err
	}

	return models.TaskListRequest{
		Search: r.URL.Query().Get("search"),
		Limit:  limit,
		Skip:   skip,
	}, nil
}

// currentUser returns the user stored by the auth middleware.
func currentUser(r *http.Request) (models.User, error) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		return models.User{}, ErrNoUserInContext
	}
	return user, nil
}
