// Package config provides unified configuration for the lookup proxy.
//
// Configuration is loaded with a layered approach:
//  1. Built-in defaults
//  2. YAML config file (discovered or explicitly specified)
//  3. Environment variable overrides (LOOKUP_ prefix)
//  4. File reference resolution (_file suffix fields)
//  5. Validation
//
// The loaded Config is immutable for the life of the process; every
// component receives it (or a slice of it) at construction time.
package config

import "time"

// Config holds all configuration for the lookup proxy.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	OAuth2        OAuth2Config        `yaml:"oauth2"`
	Directory     DirectoryConfig     `yaml:"directory"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `yaml:"port" env:"LOOKUP_PORT"`                         // default: 8080
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"LOOKUP_READ_TIMEOUT"`         // default: 30s
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"LOOKUP_WRITE_TIMEOUT"`       // default: 60s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"LOOKUP_SHUTDOWN_TIMEOUT"` // default: 30s
}

// OAuth2Config holds the token introspection settings.
type OAuth2Config struct {
	// IntrospectURL is the OAuth2 token introspection endpoint (required).
	IntrospectURL string `yaml:"introspect_url" env:"LOOKUP_OAUTH2_INTROSPECT_URL"`

	// ClientID and ClientSecret identify this service to the introspection
	// endpoint via HTTP Basic auth (required).
	ClientID         string `yaml:"client_id" env:"LOOKUP_OAUTH2_CLIENT_ID"`
	ClientSecret     string `yaml:"client_secret" env:"LOOKUP_OAUTH2_CLIENT_SECRET"`
	ClientSecretFile string `yaml:"client_secret_file" env:"LOOKUP_OAUTH2_CLIENT_SECRET_FILE"` // _file variant for client_secret

	// Timeout bounds each introspection call. Default: 5s.
	Timeout time.Duration `yaml:"timeout" env:"LOOKUP_OAUTH2_TIMEOUT"`
}

// DirectoryConfig holds the ibis directory backend settings.
type DirectoryConfig struct {
	// BaseURL of the proxied directory API (required), e.g.
	// "https://www.lookup.cam.ac.uk/api/v1".
	BaseURL string `yaml:"base_url" env:"LOOKUP_DIRECTORY_BASE_URL"`

	// Timeout bounds each directory call. Default: 10s.
	Timeout time.Duration `yaml:"timeout" env:"LOOKUP_DIRECTORY_TIMEOUT"`
}

// ObservabilityConfig holds monitoring and instrumentation settings.
type ObservabilityConfig struct {
	Metrics MetricsConfig `yaml:"metrics"`
}

// MetricsConfig holds Prometheus metrics endpoint settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"LOOKUP_METRICS_ENABLED"` // default: true
	Path    string `yaml:"path" env:"LOOKUP_METRICS_PATH"`       // default: "/metrics"
}

// Defaults returns a Config with all default values filled in.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		OAuth2: OAuth2Config{
			Timeout: 5 * time.Second,
		},
		Directory: DirectoryConfig{
			Timeout: 10 * time.Second,
		},
		Observability: ObservabilityConfig{
			Metrics: MetricsConfig{
				Enabled: true,
				Path:    "/metrics",
			},
		},
	}
}
