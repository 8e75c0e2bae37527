package middleware

import (
	"net/http"
	"strings"

	"github.com/qanda-dev/qanda/internal/recovery"
)

var allowedMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
var allowedHeaders = []string{"Content-Type", "Authorization"}

// CORS enforces an origin allow-list. A cross-origin request from a
// disallowed origin, or a preflight asking for a disallowed header, is
// rejected through the recovery layer rather than silently stripped of
// CORS headers.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				// Same-origin or non-browser request.
				next.ServeHTTP(w, r)
				return
			}

			if !allowed[origin] {
				recovery.Write(w, &recovery.CorsForbidden{Reason: "origin not allowed"})
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")

			if r.Method == http.MethodOptions {
				if reqHeaders := r.Header.Get("Access-Control-Request-Headers"); reqHeaders != "" {
					if !headersAllowed(reqHeaders) {
						recovery.Write(w, &recovery.CorsForbidden{Reason: "header not allowed"})
						return
					}
				}
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(allowedMethods, ", "))
				w.Header().Set("Access-Control-Allow-Headers", strings.Join(allowedHeaders, ", "))
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func headersAllowed(requested string) bool {
	for _, header := range strings.Split(requested, ",") {
		header = strings.TrimSpace(header)
		ok := false
		for _, allowed := range allowedHeaders {
			if strings.EqualFold(header, allowed) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}
