// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case; an unset field panics,
// which the recoverer turns into a 500.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	authenticateFn func(ctx context.Context, tokenString string) (models.User, error)
	getUserFn      func(ctx context.Context, userID int64) (models.User, error)
	deleteUserFn   func(ctx context.Context, userID int64) error
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerUserFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	return m.authenticateFn(ctx, tokenString)
}

func (m *mockAuthService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return m.getUserFn(ctx, userID)
}

func (m *mockAuthService) DeleteUser(ctx context.Context, userID int64) error {
	return m.deleteUserFn(ctx, userID)
}

// ─────────────────────────────────────────────
// Mock TaskService
// ─────────────────────────────────────────────

type mockTaskService struct {
	listFn        func(ctx context.Context, ownerID int64, req models.TaskListRequest) ([]models.Task, error)
	getFn         func(ctx context.Context, ownerID, taskID int64) (models.Task, error)
	createFn      func(ctx context.Context, ownerID int64, req models.TaskRequest) (models.Task, error)
	updateFn      func(ctx context.Context, ownerID, taskID int64, req models.TaskRequest) (models.Task, error)
	patchStatusFn func(ctx context.Context, ownerID, taskID int64, done bool) (models.StatusMessage, error)
	deleteFn      func(ctx context.Context, ownerID, taskID int64) error
	shareFn       func(ctx context.Context, ownerID int64, req models.ShareRequest) (models.ShareResult, error)
}

func (m *mockTaskService) List(ctx context.Context, ownerID int64, req models.TaskListRequest) ([]models.Task, error) {
	return m.listFn(ctx, ownerID, req)
}

func (m *mockTaskService) Get(ctx context.Context, ownerID, taskID int64) (models.Task, error) {
	return m.getFn(ctx, ownerID, taskID)
}

func (m *mockTaskService) Create(ctx context.Context, ownerID int64, req models.TaskRequest) (models.Task, error) {
	return m.createFn(ctx, ownerID, req)
}

func (m *mockTaskService) Update(ctx context.Context, ownerID, taskID int64, req models.TaskRequest) (models.Task, error) {
	return m.updateFn(ctx, ownerID, taskID, req)
}

func (m *mockTaskService) PatchStatus(ctx context.Context, ownerID, taskID int64, done bool) (models.StatusMessage, error) {
	return m.patchStatusFn(ctx, ownerID, taskID, done)
}

func (m *mockTaskService) Delete(ctx context.Context, ownerID, taskID int64) error {
	return m.deleteFn(ctx, ownerID, taskID)
}

func (m *mockTaskService) Share(ctx context.Context, ownerID int64, req models.ShareRequest) (models.ShareResult, error) {
	return m.shareFn(ctx, ownerID, req)
}

// ─────────────────────────────────────────────
// Mock AppInfoService
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testToken = "valid.jwt.token"

var testUser = models.User{UserID: 1, Username: "alice", Email: "alice@example.com"}

// authAs returns an Authenticate stub accepting only testToken.
func authAs(user models.User) func(context.Context, string) (models.User, error) {
	return func(_ context.Context, tokenString string) (models.User, error) {
		if tokenString != testToken {
			return models.User{}, service.ErrUnauthenticated
		}
		return user, nil
	}
}

func newTestHandler(auth service.AuthService, tasks service.TaskService) *Handler {
	return NewHandler(&service.Services{
		AuthService:    auth,
		TaskService:    tasks,
		AppInfoService: &mockAppInfoService{version: "test-version"},
	}, config.Server{}, logger.Nop())
}

// serve runs req through the full router of h.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// withUser puts user into the request context as the auth middleware does.
func withUser(r *http.Request, user models.User) *http.Request {
	return r.WithContext(utils.WithUser(r.Context(), user))
}
