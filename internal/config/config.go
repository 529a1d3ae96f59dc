package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/preston-bernstein/site-server/internal/option"
)

const (
	defaultPort            = "3000"
	defaultClientRoot      = "./src/client"
	defaultServiceName     = "site-server"
	defaultShutdownSeconds = 10
	defaultMockGreeting    = "Hello $0, welcome to $1"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	ClientRoot      string
	ServiceName     string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
	MockEndpoint    bool
	Metrics         MetricsConfig
	CORS            CORSConfig

	accessors *BuildConfig
}

// Load reads configuration from store. Every invalid setting is reported in
// the returned error.
func Load(store Store) (Config, error) {
	bc := NewBuildConfig(store)
	var errs []error

	str := func(key Key, def string) string {
		v, err := bc.GetValue(key, option.Some(def))
		if err != nil {
			errs = append(errs, err)
		}
		return v
	}

	shutdownSeconds, err := bc.GetNumber(KeyShutdownTimeout, option.Some[float64](defaultShutdownSeconds))
	if err != nil {
		errs = append(errs, err)
		shutdownSeconds = defaultShutdownSeconds
	} else if shutdownSeconds <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", KeyShutdownTimeout, shutdownSeconds))
		shutdownSeconds = defaultShutdownSeconds
	}

	metrics, err := loadMetrics(bc)
	if err != nil {
		errs = append(errs, err)
	}
	cors, err := loadCORS(bc)
	if err != nil {
		errs = append(errs, err)
	}

	cfg := Config{
		Port:            str(KeyPort, defaultPort),
		ClientRoot:      str(KeyClientRoot, defaultClientRoot),
		ServiceName:     str(KeyServiceName, defaultServiceName),
		LogLevel:        str(KeyLogLevel, ""),
		LogFormat:       str(KeyLogFormat, ""),
		ShutdownTimeout: time.Duration(shutdownSeconds * float64(time.Second)),
		MockEndpoint:    bc.GetFeatureFlag(FeatureMockEndpoint),
		Metrics:         metrics,
		CORS:            cors,
		accessors:       bc,
	}
	return cfg, errors.Join(errs...)
}

// Accessors returns the typed accessors the config was loaded from.
func (c Config) Accessors() *BuildConfig {
	if c.accessors == nil {
		return NewBuildConfig(nil)
	}
	return c.accessors
}

// MockGreeting renders the mock endpoint greeting for name.
func (c Config) MockGreeting(name string) (string, error) {
	return c.Accessors().GetValue(KeyMockGreeting, option.Some(defaultMockGreeting), name, c.ServiceName)
}
