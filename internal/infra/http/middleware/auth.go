package middleware

import (
	"encoding/json"
	"net/http"
)

const APIKeyHeader = "X-API-Key"

// APIKey gates the internal endpoints behind a single shared secret. The
// check runs before any handler logic; a miss never touches the store.
func APIKey(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" || r.Header.Get(APIKeyHeader) != secret {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{
					"error":   "UNAUTHORIZED",
					"message": "missing or invalid api key",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
