// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzip(t *testing.T, b []byte) string {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(b))
	require.NoError(t, err)
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

// echo replies with the request body and the given status.
func echo(status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.WriteHeader(status)
		w.Write(body)
	})
}

func TestGZip(t *testing.T) {
	tests := []struct {
		name             string
		body             []byte
		contentEncoding  string
		acceptEncoding   string
		status           int
		wantStatus       int
		wantCompressed   bool
		wantResponseBody string
	}{
		{
			name:             "plain request, plain response",
			body:             []byte(`{"title":"a"}`),
			status:           http.StatusOK,
			wantStatus:       http.StatusOK,
			wantResponseBody: `{"title":"a"}`,
		},
		{
			name:             "compressed request is inflated",
			body:             gzipBytes(t, `{"title":"b"}`),
			contentEncoding:  "gzip",
			status:           http.StatusCreated,
			wantStatus:       http.StatusCreated,
			wantResponseBody: `{"title":"b"}`,
		},
		{
			name:             "response is compressed on request",
			body:             []byte(`{"title":"c"}`),
			acceptEncoding:   "gzip, deflate",
			status:           http.StatusOK,
			wantStatus:       http.StatusOK,
			wantCompressed:   true,
			wantResponseBody: `{"title":"c"}`,
		},
		{
			name:             "both directions",
			body:             gzipBytes(t, `{"title":"d"}`),
			contentEncoding:  "gzip",
			acceptEncoding:   "gzip",
			status:           http.StatusOK,
			wantStatus:       http.StatusOK,
			wantCompressed:   true,
			wantResponseBody: `{"title":"d"}`,
		},
		{
			name:            "corrupt gzip body",
			body:            []byte("not gzip at all"),
			contentEncoding: "gzip",
			status:          http.StatusOK,
			wantStatus:      http.StatusBadRequest,
		},
		{
			name:           "no content stays uncompressed",
			acceptEncoding: "gzip",
			status:         http.StatusNoContent,
			wantStatus:     http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/tasks", bytes.NewReader(tt.body))
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rec := httptest.NewRecorder()

			withGZip(echo(tt.status)).ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCompressed {
				assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.wantResponseBody, gunzip(t, rec.Body.Bytes()))
				return
			}

			assert.Empty(t, rec.Header().Get("Content-Encoding"))
			if tt.wantResponseBody != "" {
				assert.Equal(t, tt.wantResponseBody, rec.Body.String())
			}
		})
	}
}

func TestGZip_ThroughRouter(t *testing.T) {
	h := newTestHandler(&mockAuthService{}, &mockTaskService{})

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := serve(h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.True(t, strings.Contains(rec.Header().Get("Vary"), "Accept-Encoding"))
	assert.Equal(t, "test-version", gunzip(t, rec.Body.Bytes()))
}
