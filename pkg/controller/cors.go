package controller

import (
	"net/http"
	"strings"
)

var (
	corsAllowedMethods = strings.Join([]string{ //nolint: gochecknoglobals
		http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions,
	}, ", ")
	corsAllowedHeaders = strings.Join([]string{ //nolint: gochecknoglobals
		"Accept", "Authorization", "Cache-Control", "Content-Type", RequestIDHeader,
	}, ", ")
)

// WithCORS allows any origin to call the API and answers preflight requests
// with 204. Tokens travel in the Authorization header, never in cookies, so
// credentials are not allowed.
func WithCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Headers", corsAllowedHeaders)
		h.Set("Access-Control-Allow-Methods", corsAllowedMethods)
		h.Set("Access-Control-Expose-Headers", RequestIDHeader)

		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			h.Set("Access-Control-Max-Age", "600")
			w.WriteHeader(http.StatusNoContent)

			return
		}

		next.ServeHTTP(w, r)
	})
}
