package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := rl.Middleware(okHandler)

	hit := func(ip, path string) int {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.RemoteAddr = ip + ":12345"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hit("10.0.0.1", "/api/products"))
	}
	assert.Equal(t, http.StatusTooManyRequests, hit("10.0.0.1", "/api/products"))

	// Other clients have their own budget.
	assert.Equal(t, http.StatusOK, hit("10.0.0.2", "/api/products"))

	// Non-API paths are never limited.
	assert.Equal(t, http.StatusOK, hit("10.0.0.1", "/assets/logo.png"))
}

func TestNoCacheMiddleware(t *testing.T) {
	handler := NoCacheMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Contains(t, rec.Header().Get("Cache-Control"), "no-store")

	req = httptest.NewRequest(http.MethodGet, "/assets/logo.png", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Cache-Control"))
}
