// Package introspect provides an RFC 7662 OAuth2 token introspection client
// and the temporal validation of its results.
//
// The client authenticates to the introspection endpoint with HTTP Basic
// credentials (client id/secret) and submits the token as a form field. Its
// configuration is immutable after construction; the underlying http.Client
// connection pool is safe for concurrent use. Transport failures, timeouts
// and non-2xx responses surface as errors wrapping ErrUnavailable, which is
// a different condition from an active=false result.
package introspect

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/msb/lookupproxy/pkg/observability"
)

// ErrUnavailable indicates the introspection endpoint could not be reached
// or returned an unusable response. It is a dependency failure, not a
// statement about the token.
var ErrUnavailable = errors.New("introspection endpoint unavailable")

// Result is the introspection response for a token (RFC 7662 shape).
// IssuedAt and ExpiresAt are pointers because the endpoint omits them for
// inactive tokens.
type Result struct {
	Active    bool   `json:"active"`
	IssuedAt  *int64 `json:"iat,omitempty"`
	ExpiresAt *int64 `json:"exp,omitempty"`
	Scope     string `json:"scope,omitempty"`
	Subject   string `json:"sub,omitempty"`
}

// Status classifies a Result at a point in time.
type Status int

const (
	// StatusValid means the token is active and now lies within its
	// validity window (inclusive at both bounds).
	StatusValid Status = iota

	// StatusInactive means the endpoint reported active=false.
	StatusInactive

	// StatusNotYetValid means iat is in the future.
	StatusNotYetValid

	// StatusExpired means exp is in the past.
	StatusExpired

	// StatusMalformed means the endpoint reported active=true without a
	// validity window. Treated as invalid: fail closed, never "always valid".
	StatusMalformed
)

// String returns the status name used in logs.
func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusInactive:
		return "inactive"
	case StatusNotYetValid:
		return "not_yet_valid"
	case StatusExpired:
		return "expired"
	case StatusMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// StatusAt evaluates the result's validity at the given time.
func (r *Result) StatusAt(now time.Time) Status {
	if !r.Active {
		return StatusInactive
	}
	if r.IssuedAt == nil || r.ExpiresAt == nil {
		return StatusMalformed
	}
	ts := now.Unix()
	if ts < *r.IssuedAt {
		return StatusNotYetValid
	}
	if ts > *r.ExpiresAt {
		return StatusExpired
	}
	return StatusValid
}

// Config holds the introspection client configuration. It is read once at
// construction and never mutated afterwards.
type Config struct {
	// URL is the OAuth2 token introspection endpoint.
	URL string

	// ClientID and ClientSecret authenticate this service to the endpoint
	// via HTTP Basic auth.
	ClientID     string
	ClientSecret string

	// Timeout bounds each introspection call. Default: 5s.
	Timeout time.Duration

	// HTTPClient allows injecting a custom HTTP client (useful for testing).
	// If nil, a client with the configured timeout is used.
	HTTPClient *http.Client
}

// Client performs token introspection calls.
type Client struct {
	httpClient *http.Client
	endpoint   string
	clientID   string
	secret     string
}

// NewClient creates an introspection client from the configuration.
func NewClient(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("introspection URL is required")
	}
	if _, err := url.Parse(cfg.URL); err != nil {
		return nil, fmt.Errorf("invalid introspection URL: %w", err)
	}
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, fmt.Errorf("introspection client credentials are required")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		httpClient: httpClient,
		endpoint:   cfg.URL,
		clientID:   cfg.ClientID,
		secret:     cfg.ClientSecret,
	}, nil
}

// Introspect submits the token to the introspection endpoint and returns the
// parsed result. Errors wrap ErrUnavailable; an active=false token is a
// normal result, not an error.
func (c *Client) Introspect(ctx context.Context, token string) (*Result, error) {
	form := url.Values{
		"token":           {token},
		"token_type_hint": {"access_token"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating introspection request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.clientID, c.secret)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	observability.IntrospectionLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		observability.IntrospectionRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		observability.IntrospectionRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		observability.IntrospectionRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: decoding response: %v", ErrUnavailable, err)
	}

	observability.IntrospectionRequestsTotal.WithLabelValues("ok").Inc()
	return &result, nil
}
