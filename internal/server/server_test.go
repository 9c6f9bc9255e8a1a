package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aleister1102/hlsprobe/internal/common"
	"github.com/aleister1102/hlsprobe/internal/config"
	"github.com/aleister1102/hlsprobe/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExtractor struct {
	result *models.ExtractionResult
	err    error
	panic  bool
	calls  []string
}

func (f *fakeExtractor) Extract(_ context.Context, req models.ExtractionRequest) (*models.ExtractionResult, error) {
	f.calls = append(f.calls, req.URL)
	if f.panic {
		panic("renderer exploded")
	}
	return f.result, f.err
}

func newTestServer(extractor Extractor) *Server {
	cfg := config.NewDefaultServerConfig()
	cfg.Mode = gin.TestMode
	return NewServer(cfg, extractor, zerolog.Nop())
}

func serve(t *testing.T, srv *Server, req *http.Request) (*httptest.ResponseRecorder, ExtractResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	var body ExtractResponse
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func foundResult(url string, links ...string) *models.ExtractionResult {
	return models.NewExtractionResult(url, links, nil, time.Now())
}

func TestExtractHandler_GetSuccess(t *testing.T) {
	fake := &fakeExtractor{result: foundResult("https://example.com/watch",
		"https://cdn.example.com/a.m3u8", "https://cdn.example.com/b.m3u8")}
	srv := newTestServer(fake)

	rec, body := serve(t, srv, httptest.NewRequest(http.MethodGet, "/api/extract?url=https://example.com/watch", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)
	assert.Equal(t, "https://example.com/watch", body.URL)
	assert.Equal(t, []string{"https://cdn.example.com/a.m3u8", "https://cdn.example.com/b.m3u8"}, body.Links)
	assert.Equal(t, "https://cdn.example.com/a.m3u8", body.PrimaryLink)
	require.NotNil(t, body.Timestamp)
	assert.Empty(t, body.Error)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
	assert.Equal(t, []string{"https://example.com/watch"}, fake.calls)
}

func TestExtractHandler_PostSuccess(t *testing.T) {
	fake := &fakeExtractor{result: foundResult("https://example.com", "https://cdn.example.com/a.m3u8")}
	srv := newTestServer(fake)

	req := httptest.NewRequest(http.MethodPost, "/api/extract", strings.NewReader(`{"url":"https://example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	rec, body := serve(t, srv, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)
	assert.Equal(t, "https://cdn.example.com/a.m3u8", body.PrimaryLink)
}

func TestExtractHandler_BadInput(t *testing.T) {
	tests := []struct {
		name string
		req  func() *http.Request
	}{
		{
			name: "missing query parameter",
			req:  func() *http.Request { return httptest.NewRequest(http.MethodGet, "/api/extract", nil) },
		},
		{
			name: "relative url",
			req:  func() *http.Request { return httptest.NewRequest(http.MethodGet, "/api/extract?url=/watch", nil) },
		},
		{
			name: "unsupported scheme",
			req: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/api/extract?url=ftp://example.com/a", nil)
			},
		},
		{
			name: "malformed json",
			req: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/api/extract", strings.NewReader(`{"url":`))
			},
		},
		{
			name: "empty json url",
			req: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/api/extract", strings.NewReader(`{"url":"  "}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeExtractor{}
			rec, body := serve(t, newTestServer(fake), tt.req())

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, body.Success)
			assert.NotEmpty(t, body.Error)
			assert.Empty(t, fake.calls)
		})
	}
}

func TestExtractHandler_EmptyResultIsNotFound(t *testing.T) {
	srv := newTestServer(&fakeExtractor{result: foundResult("https://example.com")})

	rec, body := serve(t, srv, httptest.NewRequest(http.MethodGet, "/api/extract?url=https://example.com", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "no m3u8 links found on page", body.Error)
	assert.Nil(t, body.Timestamp)
}

func TestExtractHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "internal failure", err: errors.New("browser launch failed"), wantStatus: http.StatusInternalServerError},
		{name: "validation failure", err: common.NewValidationError("url", "x", "bad"), wantStatus: http.StatusBadRequest},
		{name: "timeout", err: common.WrapError(common.ErrTimeout, "navigation"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(&fakeExtractor{err: tt.err})

			rec, body := serve(t, srv, httptest.NewRequest(http.MethodGet, "/api/extract?url=https://example.com", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, body.Success)
			assert.Equal(t, tt.err.Error(), body.Error)
		})
	}
}

func TestExtractHandler_PanicIsRecovered(t *testing.T) {
	srv := newTestServer(&fakeExtractor{panic: true})

	rec, body := serve(t, srv, httptest.NewRequest(http.MethodGet, "/api/extract?url=https://example.com", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, body.Success)
	assert.Contains(t, body.Error, "renderer exploded")
}

func TestServer_PreflightShortCircuits(t *testing.T) {
	fake := &fakeExtractor{}
	srv := newTestServer(fake)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/extract", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, rec.Body.Len())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Empty(t, fake.calls)
}

func TestServer_RequestIDIsPropagated(t *testing.T) {
	srv := newTestServer(&fakeExtractor{result: foundResult("https://example.com")})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	cfg := config.NewDefaultServerConfig()
	cfg.Mode = gin.TestMode
	cfg.ListenAddress = "127.0.0.1:0"
	srv := NewServer(cfg, &fakeExtractor{}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestServer_UnmatchedRequestsGetJSON(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantError  string
	}{
		{name: "unsupported method", method: http.MethodPut, path: "/api/extract", wantStatus: http.StatusMethodNotAllowed, wantError: "method not allowed"},
		{name: "delete", method: http.MethodDelete, path: "/api/extract", wantStatus: http.StatusMethodNotAllowed, wantError: "method not allowed"},
		{name: "unknown path", method: http.MethodGet, path: "/api/unknown", wantStatus: http.StatusNotFound, wantError: "route not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeExtractor{}
			rec, body := serve(t, newTestServer(fake), httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantError, body.Error)
			assert.Empty(t, fake.calls)
		})
	}
}
