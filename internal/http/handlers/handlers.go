package handlers

import (
	"errors"
	"io/fs"
	"log/slog"
	nethttp "net/http"
	"strings"

	"github.com/preston-bernstein/site-server/internal/logging"
	"github.com/preston-bernstein/site-server/internal/metrics"
)

const indexFile = "view/index.html"

// GreetFunc renders the mock endpoint message for a visitor name.
type GreetFunc func(name string) (string, error)

// Handler serves the client bundle and the small JSON endpoints.
type Handler struct {
	root     nethttp.FileSystem
	greet    GreetFunc
	recorder *metrics.Recorder
	logger   *slog.Logger
}

// NewHandler constructs a Handler serving files under clientRoot.
func NewHandler(clientRoot string, greet GreetFunc, recorder *metrics.Recorder, logger *slog.Logger) *Handler {
	return &Handler{
		root:     nethttp.Dir(clientRoot),
		greet:    greet,
		recorder: recorder,
		logger:   logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !allowRead(w, r, h.logger) {
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Index serves the client entry page.
func (h *Handler) Index(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.URL.Path != "/" && r.URL.Path != "/index" {
		h.NotFound(w, r)
		return
	}
	if !allowRead(w, r, h.logger) {
		return
	}
	h.serveFile(w, r, "view", indexFile)
}

// Static returns a handler serving the request path under the client root.
// kind labels the asset family in metrics.
func (h *Handler) Static(kind string) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if !allowRead(w, r, h.logger) {
			return
		}
		h.serveFile(w, r, kind, r.URL.Path)
	}
}

// Mock answers with a greeting rendered from the configured template.
func (h *Handler) Mock(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !allowRead(w, r, h.logger) {
		return
	}
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		name = "guest"
	}
	if h.greet == nil {
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
		return
	}

	msg, err := h.greet(name)
	if err != nil {
		logging.Error(loggerFromContext(r, h.logger), "mock greeting failed", err)
		writeError(w, r, nethttp.StatusInternalServerError, "greeting unavailable", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"message": msg}, h.logger)
}

// NotFound answers every unknown route.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

func (h *Handler) serveFile(w nethttp.ResponseWriter, r *nethttp.Request, kind, name string) {
	f, info, err := openFile(h.root, name)
	if err != nil {
		h.recorder.RecordStaticFile(kind, false)
		if !errors.Is(err, fs.ErrNotExist) {
			logging.Warn(loggerFromContext(r, h.logger), "static file unavailable",
				slog.String(logging.FieldFile, name), slog.Any("error", err))
		}
		h.NotFound(w, r)
		return
	}
	defer f.Close()

	h.recorder.RecordStaticFile(kind, true)
	nethttp.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

func allowRead(w nethttp.ResponseWriter, r *nethttp.Request, logger *slog.Logger) bool {
	if r.Method == nethttp.MethodGet || r.Method == nethttp.MethodHead {
		return true
	}
	w.Header().Set("Allow", "GET, HEAD")
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", logger)
	return false
}
