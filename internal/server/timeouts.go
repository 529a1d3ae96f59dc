package server

import "time"

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 10 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout applies when the config carries no positive timeout.
// It remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
