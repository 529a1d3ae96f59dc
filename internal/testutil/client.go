package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// ClientFiles is the bundle written by WriteClientBundle, keyed by path
// relative to the client root.
var ClientFiles = map[string]string{
	"view/index.html":         "<html><body>index</body></html>",
	"css/site.css":            "body { margin: 0; }",
	"js/app.js":               "console.log('app');",
	"assets/img/logo.svg":     "<svg></svg>",
	"assets/fonts/readme.txt": "fonts",
}

// WriteClientBundle writes ClientFiles under a fresh temp dir and returns it.
func WriteClientBundle(t testing.TB) string {
	t.Helper()
	root := t.TempDir()
	for rel, body := range ClientFiles {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", path, err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	return root
}
