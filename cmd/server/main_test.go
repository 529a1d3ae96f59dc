package main

import (
	"errors"
	"testing"

	"github.com/preston-bernstein/site-server/internal/config"
)

// Smoke test to ensure main honors SKIP_SERVER_RUN and does not block test runs.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	main()
}

func TestServeRejectsInvalidConfig(t *testing.T) {
	env := writeEnv(t, "SHUTDOWN_TIMEOUT_SECONDS=soon\nLOG_LEVEL=error\n")

	_, err := runCLI(t, env, "serve")
	if !errors.Is(err, config.ErrInvalidNumber) {
		t.Fatalf("expected invalid number error, got %v", err)
	}
}

func TestServeRejectsUnreadableEnvFile(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "serve")
	if err == nil {
		t.Fatalf("expected error for directory passed as env file")
	}
}
