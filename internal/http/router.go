package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/site-server/internal/http/handlers"
)

// Asset families served straight from the client root.
var staticPrefixes = []string{"css", "js", "assets"}

// NewRouter registers HTTP routes on a ServeMux. The mock endpoint is only
// mounted when enabled.
func NewRouter(handler *handlers.Handler, mockEnabled bool) nethttp.Handler {
	mux := nethttp.NewServeMux()
	for _, kind := range staticPrefixes {
		mux.HandleFunc("/"+kind+"/", handler.Static(kind))
	}
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/index", handler.Index)
	if mockEnabled {
		mux.HandleFunc("/api/mock", handler.Mock)
	}
	mux.HandleFunc("/", handler.Index)
	return mux
}
