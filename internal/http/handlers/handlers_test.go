package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/preston-bernstein/site-server/internal/metrics"
	"github.com/preston-bernstein/site-server/internal/testutil"
)

func newTestHandler(t *testing.T, greet GreetFunc) (*Handler, *metrics.Recorder) {
	t.Helper()
	logger, _ := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()
	return NewHandler(testutil.WriteClientBundle(t), greet, rec, logger), rec
}

func TestHealth(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Health), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["status"] != "ok" {
		t.Fatalf("expected status ok, got %+v", body)
	}

	rr = testutil.Serve(http.HandlerFunc(h.Health), http.MethodPost, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
	if got := rr.Header().Get("Allow"); got != "GET, HEAD" {
		t.Fatalf("expected Allow header, got %q", got)
	}
}

func TestIndexServesEntryPage(t *testing.T) {
	h, rec := newTestHandler(t, nil)

	for _, path := range []string{"/", "/index"} {
		rr := testutil.Serve(http.HandlerFunc(h.Index), http.MethodGet, path, nil)
		testutil.AssertStatus(t, rr, http.StatusOK)
		if rr.Body.String() != testutil.ClientFiles["view/index.html"] {
			t.Fatalf("%s: unexpected body %q", path, rr.Body.String())
		}
		if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Fatalf("%s: expected html content type, got %q", path, ct)
		}
	}
	if served, _ := rec.StaticCounts("view"); served != 2 {
		t.Fatalf("expected 2 index hits recorded, got %d", served)
	}
}

func TestIndexRejectsOtherPaths(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Index), http.MethodGet, "/unknown", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestIndexMissingFile(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	h := NewHandler(t.TempDir(), nil, nil, logger)

	rr := testutil.Serve(http.HandlerFunc(h.Index), http.MethodGet, "/", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestStaticServesFiles(t *testing.T) {
	h, rec := newTestHandler(t, nil)

	cases := map[string]string{
		"/css/site.css":            "css",
		"/js/app.js":               "js",
		"/assets/img/logo.svg":     "assets",
		"/assets/fonts/readme.txt": "assets",
	}
	for path, kind := range cases {
		rr := testutil.Serve(h.Static(kind), http.MethodGet, path, nil)
		testutil.AssertStatus(t, rr, http.StatusOK)
		if want := testutil.ClientFiles[strings.TrimPrefix(path, "/")]; rr.Body.String() != want {
			t.Fatalf("%s: expected %q, got %q", path, want, rr.Body.String())
		}
	}
	if served, _ := rec.StaticCounts("assets"); served != 2 {
		t.Fatalf("expected 2 asset hits, got %d", served)
	}
}

func TestStaticHeadHasNoBody(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	rr := testutil.Serve(h.Static("css"), http.MethodHead, "/css/site.css", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if rr.Body.Len() != 0 {
		t.Fatalf("expected empty body for HEAD")
	}
}

func TestStaticMissingAndDirectories(t *testing.T) {
	h, rec := newTestHandler(t, nil)

	for _, path := range []string{"/css/missing.css", "/assets/img", "/assets/img/", "/js/"} {
		rr := testutil.Serve(h.Static("x"), http.MethodGet, path, nil)
		testutil.AssertStatus(t, rr, http.StatusNotFound)
	}
	if _, missed := rec.StaticCounts("x"); missed != 4 {
		t.Fatalf("expected 4 misses, got %d", missed)
	}
}

func TestStaticStaysInsideRoot(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/css/site.css", nil)
	req.URL.Path = "/css/../../../etc/passwd"
	rr := testutil.ServeRequest(h.Static("css"), req)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestStaticRejectsWrites(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	rr := testutil.Serve(h.Static("css"), http.MethodDelete, "/css/site.css", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestMock(t *testing.T) {
	var gotName string
	h, _ := newTestHandler(t, func(name string) (string, error) {
		gotName = name
		return "Hello " + name, nil
	})

	rr := testutil.Serve(http.HandlerFunc(h.Mock), http.MethodGet, "/api/mock?name=Ann", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["message"] != "Hello Ann" || gotName != "Ann" {
		t.Fatalf("unexpected greeting %+v (name %q)", body, gotName)
	}

	rr = testutil.Serve(http.HandlerFunc(h.Mock), http.MethodGet, "/api/mock", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if gotName != "guest" {
		t.Fatalf("expected default name, got %q", gotName)
	}
}

func TestMockGreetingFailure(t *testing.T) {
	h, _ := newTestHandler(t, func(string) (string, error) {
		return "", errors.New("template placeholder has no replacement")
	})

	rr := testutil.Serve(http.HandlerFunc(h.Mock), http.MethodGet, "/api/mock", nil)
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
}

func TestMockWithoutGreeter(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Mock), http.MethodGet, "/api/mock", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}
