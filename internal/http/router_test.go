package http

import (
	"net/http"
	"testing"

	"github.com/preston-bernstein/site-server/internal/http/handlers"
	"github.com/preston-bernstein/site-server/internal/testutil"
)

func newTestRouter(t *testing.T, mockEnabled bool) http.Handler {
	t.Helper()
	greet := func(name string) (string, error) { return "hi " + name, nil }
	h := handlers.NewHandler(testutil.WriteClientBundle(t), greet, nil, nil)
	return NewRouter(h, mockEnabled)
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newTestRouter(t, false)

	cases := map[string]int{
		"/":                    http.StatusOK,
		"/index":               http.StatusOK,
		"/health":              http.StatusOK,
		"/css/site.css":        http.StatusOK,
		"/js/app.js":           http.StatusOK,
		"/assets/img/logo.svg": http.StatusOK,
		"/css/missing.css":     http.StatusNotFound,
		"/view/index.html":     http.StatusNotFound,
		"/api/mock":            http.StatusNotFound,
	}

	for path, expected := range cases {
		rr := testutil.Serve(router, http.MethodGet, path, nil)
		if rr.Code != expected {
			t.Fatalf("route %s expected status %d, got %d", path, expected, rr.Code)
		}
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	router := newTestRouter(t, false)

	rr := testutil.Serve(router, http.MethodGet, "/does-not-exist", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestRouterMountsMockWhenEnabled(t *testing.T) {
	router := newTestRouter(t, true)

	rr := testutil.Serve(router, http.MethodGet, "/api/mock?name=Bob", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["message"] != "hi Bob" {
		t.Fatalf("unexpected mock body %+v", body)
	}
}
