// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
)

// getUser serves the public profile of any user.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	userID, err := idFromURL(r)
	if err != nil {
		writeError(w, r, "*Handler.getUser", err)
		return
	}

	user, err := h.services.AuthService.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.getUser", err)
		return
	}

	utils.WriteJSON(w, user.ToResponse(), http.StatusOK)
}

// deleteUser removes the caller's account together with its tasks.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteUser", err)
		return
	}

	if err = h.services.AuthService.DeleteUser(r.Context(), user.UserID); err != nil {
		writeError(w, r, "*Handler.deleteUser", err)
		return
	}

	logger.FromRequest(r).Info().Int64("id", user.UserID).Msg("user deleted")
	w.WriteHeader(http.StatusNoContent)
}
