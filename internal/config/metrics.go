package config

import (
	"errors"

	"github.com/preston-bernstein/site-server/internal/option"
)

const defaultMetricsPort = "9090"

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	OtlpInsecure bool
}

func loadMetrics(bc *BuildConfig) (MetricsConfig, error) {
	enabled, errEnabled := bc.GetBoolean(KeyMetricsEnabled, option.Some(false))
	port, errPort := bc.GetValue(KeyMetricsPort, option.Some(defaultMetricsPort))
	endpoint, errEndpoint := bc.GetValue(KeyOtelEndpoint, option.Some(""))
	insecure, errInsecure := bc.GetBoolean(KeyOtelInsecure, option.Some(true))

	return MetricsConfig{
		Enabled:      enabled,
		Port:         port,
		OtlpEndpoint: endpoint,
		OtlpInsecure: insecure,
	}, errors.Join(errEnabled, errPort, errEndpoint, errInsecure)
}
