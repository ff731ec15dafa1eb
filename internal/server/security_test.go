package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestLoopbackOnlyMiddleware(t *testing.T) {
	handler := LoopbackOnlyMiddleware()(okHandler())

	t.Run("Loopback clients pass", func(t *testing.T) {
		for _, addr := range []string{"127.0.0.1:51234", "[::1]:51234"} {
			req := httptest.NewRequest("GET", "/api/v1/plan", nil)
			req.RemoteAddr = addr
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code, "addr %s", addr)
		}
	})

	t.Run("Remote clients are rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/plan", nil)
		req.RemoteAddr = "203.0.113.7:51234"
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Forwarded headers are not trusted", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/plan", nil)
		req.RemoteAddr = "203.0.113.7:51234"
		req.Header.Set("X-Forwarded-For", "127.0.0.1")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	handler := SecurityHeadersMiddleware()(okHandler())

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, HeaderValueNoSniff, w.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueSameOrigin, w.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, w.Header().Get(HeaderReferrerPolicy))
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 32)
		if _, err := r.Body.Read(buf); err != nil && err.Error() == "http: request body too large" {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	handler := RequestSizeLimitMiddleware(8)(echo)

	t.Run("Small bodies pass", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/plan", strings.NewReader("tiny"))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Oversized bodies are cut off", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/plan", strings.NewReader(strings.Repeat("x", 64)))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}
