package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate checks the configuration for required fields and valid values.
// Returns an error with a descriptive field path on failure.
func (c *Config) Validate() error {
	var errs []error

	// server.port must be positive.
	if c.Server.Port <= 0 {
		errs = append(errs, fmt.Errorf("server.port must be > 0, got %d", c.Server.Port))
	}

	// The introspection settings are all required: without them every
	// protected request would fail closed at runtime.
	if c.OAuth2.IntrospectURL == "" {
		errs = append(errs, fmt.Errorf("oauth2.introspect_url is required"))
	} else if _, err := url.Parse(c.OAuth2.IntrospectURL); err != nil {
		errs = append(errs, fmt.Errorf("oauth2.introspect_url: %w", err))
	}
	if c.OAuth2.ClientID == "" {
		errs = append(errs, fmt.Errorf("oauth2.client_id is required"))
	}
	if c.OAuth2.ClientSecret == "" {
		errs = append(errs, fmt.Errorf("oauth2.client_secret or oauth2.client_secret_file is required"))
	}
	if c.OAuth2.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("oauth2.timeout must be > 0, got %s", c.OAuth2.Timeout))
	}

	// directory.base_url is required.
	if c.Directory.BaseURL == "" {
		errs = append(errs, fmt.Errorf("directory.base_url is required"))
	}
	if c.Directory.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("directory.timeout must be > 0, got %s", c.Directory.Timeout))
	}

	if c.Observability.Metrics.Enabled && c.Observability.Metrics.Path == "" {
		errs = append(errs, fmt.Errorf("observability.metrics.path is required when metrics are enabled"))
	}

	return errors.Join(errs...)
}
