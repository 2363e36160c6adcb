// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpTaskAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPTaskAdapter constructs a REST implementation of [TaskAdapter] bound
// to address. The address may omit the scheme, in which case http is
// assumed. A zero timeout disables the per-request timeout.
func NewHTTPTaskAdapter(address string, timeout time.Duration, logger *logger.Logger) (TaskAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpTaskAdapter{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpTaskAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpTaskAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// authorized returns a request carrying the stored bearer token.
func (h *httpTaskAdapter) authorized(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}
	return h.client.R().SetContext(ctx).SetAuthToken(token), nil
}

func (h *httpTaskAdapter) storeTokenFrom(resp *resty.Response) error {
	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return err
	}
	h.SetToken(token)
	return nil
}

// Register POSTs to /api/user/register. The token is taken from the
// Authorization response header.
func (h *httpTaskAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.UserResponse, error) {
	var user models.UserResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&user).
		Post("/api/user/register")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	if err = h.storeTokenFrom(resp); err != nil {
		return models.UserResponse{}, fmt.Errorf("register parse bearer token: %w", err)
	}

	h.logger.Debug().Int64("id", user.UserID).Msg("registered")
	return user, nil
}

// Login POSTs the credentials as JSON to /api/user/login.
func (h *httpTaskAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var login models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&login).
		Post("/api/user/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	if login.AccessToken == "" {
		if err = h.storeTokenFrom(resp); err != nil {
			return models.LoginResponse{}, fmt.Errorf("login parse bearer token: %w", err)
		}
		login.AccessToken = h.Token()
	} else {
		h.SetToken(login.AccessToken)
	}

	return login, nil
}

func (h *httpTaskAdapter) GetUser(ctx context.Context, userID int64) (models.UserResponse, error) {
	var user models.UserResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&user).
		SetPathParam("id", strconv.FormatInt(userID, 10)).
		Get("/api/user/{id}")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	return user, nil
}

func (h *httpTaskAdapter) DeleteAccount(ctx context.Context) error {
	req, err := h.authorized(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Delete("/api/user")
	if err != nil {
		return fmt.Errorf("delete account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

// ListTasks sends only the non-zero fields of req, so the server defaults
// apply to the rest.
func (h *httpTaskAdapter) ListTasks(ctx context.Context, listReq models.TaskListRequest) ([]models.TaskResponse, error) {
	req, err := h.authorized(ctx)
	if err != nil {
		return nil, err
	}

	if listReq.Search != "" {
		req.SetQueryParam("search", listReq.Search)
	}
	if listReq.Limit != 0 {
		req.SetQueryParam("limit", strconv.Itoa(listReq.Limit))
	}
	if listReq.Skip != 0 {
		req.SetQueryParam("skip", strconv.Itoa(listReq.Skip))
	}

	var tasks []models.TaskResponse
	resp, err := req.SetResult(&tasks).Get("/api/tasks")
	if err != nil {
		return nil, fmt.Errorf("list tasks request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return tasks, nil
}

func (h *httpTaskAdapter) CreateTask(ctx context.Context, taskReq models.TaskRequest) (models.TaskResponse, error) {
	req, err := h.authorized(ctx)
	if err != nil {
		return models.TaskResponse{}, err
	}

	var task models.TaskResponse
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(taskReq).
		SetResult(&task).
		Post("/api/tasks")
	if err != nil {
		return models.TaskResponse{}, fmt.Errorf("create task request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TaskResponse{}, err
	}

	return task, nil
}

func (h *httpTaskAdapter) GetTask(ctx context.Context, taskID int64) (models.TaskResponse, error) {
	req, err := h.authorized(ctx)
	if err != nil {
		return models.TaskResponse{}, err
	}

	var task models.TaskResponse
	resp, err := req.
		SetResult(&task).
		SetPathParam("id", strconv.FormatInt(taskID, 10)).
		Get("/api/tasks/{id}")
	if err != nil {
		return models.TaskResponse{}, fmt.Errorf("get task request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TaskResponse{}, err
	}

	return task, nil
}

func (h *httpTaskAdapter) UpdateTask(ctx context.Context, taskID int64, taskReq models.TaskRequest) (models.TaskResponse, error) {
	req, err := h.authorized(ctx)
	if err != nil {
		return models.TaskResponse{}, err
	}

	var task models.TaskResponse
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(taskReq).
		SetResult(&task).
		SetPathParam("id", strconv.FormatInt(taskID, 10)).
		Put("/api/tasks/{id}")
	if err != nil {
		return models.TaskResponse{}, fmt.Errorf("update task request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TaskResponse{}, err
	}

	return task, nil
}

func (h *httpTaskAdapter) SetTaskStatus(ctx context.Context, taskID int64, done bool) (models.StatusMessage, error) {
	req, err := h.authorized(ctx)
	if err != nil {
		return models.StatusMessage{}, err
	}

	var msg models.StatusMessage
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(models.TaskStatusRequest{Done: done}).
		SetResult(&msg).
		SetPathParam("id", strconv.FormatInt(taskID, 10)).
		Patch("/api/tasks/{id}")
	if err != nil {
		return models.StatusMessage{}, fmt.Errorf("set task status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StatusMessage{}, err
	}

	return msg, nil
}

func (h *httpTaskAdapter) DeleteTask(ctx context.Context, taskID int64) error {
	req, err := h.authorized(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParam("id", strconv.FormatInt(taskID, 10)).
		Delete("/api/tasks/{id}")
	if err != nil {
		return fmt.Errorf("delete task request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpTaskAdapter) ShareTasks(ctx context.Context, shareReq models.ShareRequest) (models.ShareResult, error) {
	req, err := h.authorized(ctx)
	if err != nil {
		return models.ShareResult{}, err
	}

	var result models.ShareResult
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(shareReq).
		SetResult(&result).
		Post("/api/tasks/share")
	if err != nil {
		return models.ShareResult{}, fmt.Errorf("share tasks request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ShareResult{}, err
	}

	return result, nil
}

func (h *httpTaskAdapter) GetVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}
