// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, "*Handler.listTasks", err)
		return
	}

	req, err := taskListRequestFromURL(r)
	if err != nil {
		writeError(w, r, "*Handler.listTasks", err)
		return
	}

	tasks, err := h.services.TaskService.List(r.Context(), user.UserID, req)
	if err != nil {
		writeError(w, r, "*Handler.listTasks", err)
		return
	}

	response := make([]models.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		response = append(response, task.ToResponse(user))
	}
	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, "*Handler.createTask", err)
		return
	}

	var req models.TaskRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.createTask", err)
		return
	}

	task, err := h.services.TaskService.Create(r.Context(), user.UserID, req)
	if err != nil {
		writeError(w, r, "*Handler.createTask", err)
		return
	}

	utils.WriteJSON(w, task.ToResponse(user), http.StatusCreated)
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	user, taskID, ok := h.taskTarget(w, r, "*Handler.getTask")
	if !ok {
		return
	}

	task, err := h.services.TaskService.Get(r.Context(), user.UserID, taskID)
	if err != nil {
		writeError(w, r, "*Handler.getTask", err)
		return
	}

	utils.WriteJSON(w, task.ToResponse(user), http.StatusOK)
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	user, taskID, ok := h.taskTarget(w, r, "*Handler.updateTask")
	if !ok {
		return
	}

	var req models.TaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.updateTask", err)
		return
	}

	task, err := h.services.TaskService.Update(r.Context(), user.UserID, taskID, req)
	if err != nil {
		writeError(w, r, "*Handler.updateTask", err)
		return
	}

	utils.WriteJSON(w, task.ToResponse(user), http.StatusOK)
}

func (h *Handler) patchTaskStatus(w http.ResponseWriter, r *http.Request) {
	user, taskID, ok := h.taskTarget(w, r, "*Handler.patchTaskStatus")
	if !ok {
		return
	}

	var req models.TaskStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.patchTaskStatus", err)
		return
	}

	msg, err := h.services.TaskService.PatchStatus(r.Context(), user.UserID, taskID, req.Done)
	if err != nil {
		writeError(w, r, "*Handler.patchTaskStatus", err)
		return
	}

	utils.WriteJSON(w, msg, http.StatusOK)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	user, taskID, ok := h.taskTarget(w, r, "*Handler.deleteTask")
	if !ok {
		return
	}

	if err := h.services.TaskService.Delete(r.Context(), user.UserID, taskID); err != nil {
		writeError(w, r, "*Handler.deleteTask", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// shareTasks copies the caller's tasks to another user, or with
// "share": false removes the caller's own tasks. The flag has no default.
func (h *Handler) shareTasks(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, "*Handler.shareTasks", err)
		return
	}

	var req models.ShareRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.shareTasks", err)
		return
	}

	result, err := h.services.TaskService.Share(r.Context(), user.UserID, req)
	if err != nil {
		writeError(w, r, "*Handler.shareTasks", err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// taskTarget resolves the caller and the {id} path parameter. On failure it
// has already written the response.
func (h *Handler) taskTarget(w http.ResponseWriter, r *http.Request, funcName string) (models.User, int64, bool) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, funcName, err)
		return models.User{}, 0, false
	}

	taskID, err := idFromURL(r)
	if err != nil {
		writeError(w, r, funcName, err)
		return models.User{}, 0, false
	}

	return user, taskID, true
}
