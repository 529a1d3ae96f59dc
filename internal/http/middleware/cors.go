package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/preston-bernstein/site-server/internal/config"
)

// CORSMiddleware adds the configured CORS headers to every response and
// answers preflight requests directly.
func CORSMiddleware(cfg config.CORSConfig, next http.Handler) http.Handler {
	headers := strings.Join(cfg.AllowHeaders, ", ")
	methods := strings.Join(cfg.AllowMethods, ", ")
	creds := strconv.FormatBool(cfg.AllowCredentials)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		if cfg.AllowOrigin != "" {
			h.Set("Access-Control-Allow-Origin", cfg.AllowOrigin)
		}
		h.Set("Access-Control-Allow-Credentials", creds)
		if headers != "" {
			h.Set("Access-Control-Allow-Headers", headers)
		}
		if methods != "" {
			h.Set("Access-Control-Allow-Methods", methods)
		}

		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
