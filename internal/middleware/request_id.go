package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type key int

const requestIdKey key = 0

// RequestID assigns each request a correlation id, honoring one supplied by
// a proxy. The id is echoed in the response for client-side log matching.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set("X-Request-Id", id)
		ctx := context.WithValue(r.Context(), requestIdKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID returns the id assigned by RequestID, or "".
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIdKey).(string)
	return id
}
