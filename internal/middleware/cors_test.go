package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func corsHandler(t *testing.T, origins []string) http.Handler {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	return CORS(origins)(next)
}

func TestCORSAllowsSameOriginRequests(t *testing.T) {
	h := corsHandler(t, []string{"https://allowed.example"})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/questions", nil))

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSAllowsListedOrigin(t *testing.T) {
	h := corsHandler(t, []string{"https://allowed.example"})

	req := httptest.NewRequest("GET", "/questions", nil)
	req.Header.Set("Origin", "https://allowed.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.Equal(t, "https://allowed.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSRejectsUnlistedOrigin(t *testing.T) {
	h := corsHandler(t, []string{"https://allowed.example"})

	req := httptest.NewRequest("GET", "/questions", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, 403, rec.Code)
	assert.Equal(t, "CORS request forbidden: origin not allowed\n", rec.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	h := corsHandler(t, []string{"https://allowed.example"})

	req := httptest.NewRequest("OPTIONS", "/questions", nil)
	req.Header.Set("Origin", "https://allowed.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Content-Type")
}

func TestCORSPreflightDisallowedHeader(t *testing.T) {
	h := corsHandler(t, []string{"https://allowed.example"})

	req := httptest.NewRequest("OPTIONS", "/questions", nil)
	req.Header.Set("Origin", "https://allowed.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "X-Custom-Secret")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, 403, rec.Code)
	assert.Equal(t, "CORS request forbidden: header not allowed\n", rec.Body.String())
}
