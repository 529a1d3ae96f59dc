package config

// Key names a configuration entry in the environment snapshot.
type Key string

// FeatureFlag is a boolean key that reads as false when unset.
type FeatureFlag string

// Key returns the snapshot key backing the flag.
func (f FeatureFlag) Key() Key { return Key(f) }

const (
	FeatureMockEndpoint FeatureFlag = "FEATURE_MOCK_ENDPOINT"
)

const (
	KeyPort                 Key = "PORT"
	KeyClientRoot           Key = "CLIENT_ROOT"
	KeyLogLevel             Key = "LOG_LEVEL"
	KeyLogFormat            Key = "LOG_FORMAT"
	KeyServiceName          Key = "SERVICE_NAME"
	KeyMetricsEnabled       Key = "METRICS_ENABLED"
	KeyMetricsPort          Key = "METRICS_PORT"
	KeyOtelEndpoint         Key = "OTEL_EXPORTER_OTLP_ENDPOINT"
	KeyOtelInsecure         Key = "OTEL_EXPORTER_OTLP_INSECURE"
	KeyCORSAllowOrigin      Key = "CORS_ALLOW_ORIGIN"
	KeyCORSAllowCredentials Key = "CORS_ALLOW_CREDENTIALS"
	KeyCORSAllowHeaders     Key = "CORS_ALLOW_HEADERS"
	KeyCORSAllowMethods     Key = "CORS_ALLOW_METHODS"
	KeyShutdownTimeout      Key = "SHUTDOWN_TIMEOUT_SECONDS"
	KeyMockGreeting         Key = "MOCK_GREETING"
)

var featureFlags = []FeatureFlag{
	FeatureMockEndpoint,
}

var keys = []Key{
	KeyPort,
	KeyClientRoot,
	KeyLogLevel,
	KeyLogFormat,
	KeyServiceName,
	KeyMetricsEnabled,
	KeyMetricsPort,
	KeyOtelEndpoint,
	KeyOtelInsecure,
	KeyCORSAllowOrigin,
	KeyCORSAllowCredentials,
	KeyCORSAllowHeaders,
	KeyCORSAllowMethods,
	KeyShutdownTimeout,
	KeyMockGreeting,
}

// Keys lists every recognized key, feature flags included.
func Keys() []Key {
	out := make([]Key, 0, len(keys)+len(featureFlags))
	for _, f := range featureFlags {
		out = append(out, f.Key())
	}
	return append(out, keys...)
}

// ParseKey reports whether name is a recognized key. Keys are case-sensitive.
func ParseKey(name string) (Key, bool) {
	for _, k := range Keys() {
		if string(k) == name {
			return k, true
		}
	}
	return "", false
}

// ParseFeatureFlag reports whether name is a recognized feature flag.
func ParseFeatureFlag(name string) (FeatureFlag, bool) {
	for _, f := range featureFlags {
		if string(f) == name {
			return f, true
		}
	}
	return "", false
}
