package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobexecutive/jobboard/internal/config"
	"github.com/jobexecutive/jobboard/internal/server/ratelimit"
	"github.com/jobexecutive/jobboard/internal/store"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{
		Secret:          "test-secret-key-for-jwt-signing-minimum-32-bytes",
		ExpirationHours: 24,
	}
}

// newTestServer creates a server over the built-in seed with rate limiting
// disabled.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	srv, err := New(Config{
		Port:      8080,
		Store:     store.New(store.DefaultSeed()),
		JWT:       testJWTConfig(),
		RateLimit: &ratelimit.Config{Enabled: false},
	})
	require.NoError(t, err)
	return srv
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestNew_RequiresStoreAndJWT(t *testing.T) {
	_, err := New(Config{JWT: testJWTConfig()})
	require.Error(t, err)

	_, err = New(Config{Store: store.New(nil)})
	require.Error(t, err)
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.handleHealth(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	decodeBody(t, w, &body)
	assert.Equal(t, "ok", body["status"])
}

func TestRouter_ServesRegisteredRoutes(t *testing.T) {
	srv := newTestServer(t)
	handler := srv.httpServer.Handler

	for _, tc := range []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/jobs", http.StatusOK},
		{http.MethodGet, "/seekers", http.StatusOK},
		{http.MethodGet, "/companies", http.StatusOK},
		{http.MethodGet, "/posts", http.StatusOK},
		{http.MethodGet, "/users/seeker1", http.StatusOK},
		{http.MethodGet, "/nope", http.StatusNotFound},
	} {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, tc.status, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestRouter_MeRequiresToken(t *testing.T) {
	srv := newTestServer(t)
	handler := srv.httpServer.Handler

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_CORSHeaders(t *testing.T) {
	srv := newTestServer(t)
	handler := srv.httpServer.Handler

	req := httptest.NewRequest(http.MethodOptions, "/jobs", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestRouter_RateLimitExceeded(t *testing.T) {
	srv, err := New(Config{
		Port:  8080,
		Store: store.New(store.DefaultSeed()),
		JWT:   testJWTConfig(),
		RateLimit: &ratelimit.Config{
			Enabled:       true,
			DefaultLimit:  2,
			DefaultWindow: time.Minute,
		},
	})
	require.NoError(t, err)
	defer srv.rateLimiter.Stop()
	handler := srv.httpServer.Handler

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		last = httptest.NewRecorder()
		handler.ServeHTTP(last, req)
	}

	assert.Equal(t, http.StatusTooManyRequests, last.Code)
	assert.Equal(t, "2", last.Header().Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, last.Header().Get("Retry-After"))
}

func TestClientAddr(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	assert.Equal(t, "10.0.0.1:1234", clientAddr(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.5, 70.41.3.18")
	assert.Equal(t, "203.0.113.5", clientAddr(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.5")
	assert.Equal(t, "203.0.113.5", clientAddr(req))
}
