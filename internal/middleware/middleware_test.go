package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"loomline-be/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionMiddleware(t *testing.T) {
	m := NewSessionMiddleware("test-secret", time.Hour)

	var seenSessionID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenSessionID = SessionID(r)
		w.WriteHeader(http.StatusOK)
	})
	handler := m.Handler(next)

	t.Run("First contact mints a cookie", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/cart", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		require.NotEmpty(t, seenSessionID)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "loomline_session", cookies[0].Name)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("Returning visitor keeps the same session", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/cart", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		first := seenSessionID
		cookie := w.Result().Cookies()[0]

		req2 := httptest.NewRequest("GET", "/api/cart", nil)
		req2.AddCookie(cookie)
		w2 := httptest.NewRecorder()
		handler.ServeHTTP(w2, req2)

		assert.Equal(t, first, seenSessionID)
		// No new cookie issued on the second request.
		assert.Empty(t, w2.Result().Cookies())
	})

	t.Run("Tampered cookie starts a fresh session", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/cart", nil)
		req.AddCookie(&http.Cookie{Name: "loomline_session", Value: "garbage"})
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.NotEmpty(t, seenSessionID)
		assert.Len(t, w.Result().Cookies(), 1)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RateLimitMiddleware(next)

	t.Run("Strict tier throttles checkout mutations", func(t *testing.T) {
		ctx := logger.WithSessionID(httptest.NewRequest("POST", "/api/checkout/next", nil).Context(), "sess-limited")

		var last int
		for i := 0; i < burstStrict+2; i++ {
			req := httptest.NewRequest("POST", "/api/checkout/next", nil).WithContext(ctx)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			last = w.Code
		}

		assert.Equal(t, http.StatusTooManyRequests, last)
	})

	t.Run("General tier allows browsing", func(t *testing.T) {
		ctx := logger.WithSessionID(httptest.NewRequest("GET", "/api/products", nil).Context(), "sess-browse")

		req := httptest.NewRequest("GET", "/api/products", nil).WithContext(ctx)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
