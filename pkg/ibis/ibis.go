// Package ibis provides the HTTP client for the proxied directory service
// ("ibis", the Lookup web service). The proxy holds no directory data of its
// own: every resource request is a passthrough to this backend.
//
// Absent records return (nil, nil); transport and status failures return
// errors wrapping ErrUnavailable. The client configuration is immutable
// after construction and the client is safe for concurrent use.
package ibis

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"resty.dev/v3"

	"github.com/msb/lookupproxy/pkg/api"
	"github.com/msb/lookupproxy/pkg/observability"
)

// ErrUnavailable indicates the directory backend could not be reached or
// returned an unexpected response.
var ErrUnavailable = errors.New("directory backend unavailable")

// Config holds the directory client configuration.
type Config struct {
	// BaseURL of the directory API, e.g. "https://www.lookup.cam.ac.uk/api/v1".
	BaseURL string

	// Timeout bounds each directory call. Default: 10s.
	Timeout time.Duration
}

// SearchQuery holds the parameters for a person search.
type SearchQuery struct {
	Query            string
	ApproxMatches    bool
	IncludeCancelled bool
	MISStatus        string
	Attributes       string
	Offset           int
	Limit            int
	OrderBy          string
	Fetch            string
}

// Client calls the ibis JSON web service.
type Client struct {
	client *resty.Client
}

// New creates a directory client from the configuration.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("directory base URL is required")
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Client{client: client}, nil
}

// Close releases the client's idle connections.
func (c *Client) Close() error {
	return c.client.Close()
}

// resultEnvelope is the "result" wrapper every ibis response uses. Only the
// field relevant to the requested operation is populated.
type resultEnvelope struct {
	Result struct {
		Person           *api.Person           `json:"person"`
		People           []api.Person          `json:"people"`
		Group            *api.Group            `json:"group"`
		Institution      *api.Institution      `json:"institution"`
		Institutions     []api.Institution     `json:"institutions"`
		AttributeSchemes []api.AttributeScheme `json:"attributeSchemes"`
		Count            int                   `json:"count"`
	} `json:"result"`
}

// get performs one GET against the backend, recording the outcome metric.
// notFoundOK controls whether a 404 is a normal absent-record result.
func (c *Client) get(ctx context.Context, operation, path string, params map[string]string, out *resultEnvelope) (found bool, err error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(out).
		Get(path)
	if err != nil {
		observability.DirectoryRequestsTotal.WithLabelValues(operation, "error").Inc()
		return false, fmt.Errorf("%w: %s: %v", ErrUnavailable, operation, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		observability.DirectoryRequestsTotal.WithLabelValues(operation, "not_found").Inc()
		return false, nil
	}
	if resp.IsError() {
		observability.DirectoryRequestsTotal.WithLabelValues(operation, "error").Inc()
		return false, fmt.Errorf("%w: %s: unexpected status %d", ErrUnavailable, operation, resp.StatusCode())
	}
	observability.DirectoryRequestsTotal.WithLabelValues(operation, "ok").Inc()
	return true, nil
}

// searchParams converts a SearchQuery into the backend's query parameters.
// Keys used only by the full search (offset, limit, orderBy) are included
// only when full is set, matching the searchCount/search split of the
// backend API.
func searchParams(q SearchQuery, full bool) map[string]string {
	params := map[string]string{
		"query":            q.Query,
		"approxMatches":    strconv.FormatBool(q.ApproxMatches),
		"includeCancelled": strconv.FormatBool(q.IncludeCancelled),
	}
	if q.MISStatus != "" {
		params["misStatus"] = q.MISStatus
	}
	if q.Attributes != "" {
		params["attributes"] = q.Attributes
	}
	if full {
		params["offset"] = strconv.Itoa(q.Offset)
		params["limit"] = strconv.Itoa(q.Limit)
		params["orderBy"] = q.OrderBy
		if q.Fetch != "" {
			params["fetch"] = q.Fetch
		}
	}
	return params
}

// fetchParams returns the query parameters for a single-record fetch.
func fetchParams(fetch string) map[string]string {
	if fetch == "" {
		return nil
	}
	return map[string]string{"fetch": fetch}
}

// SearchCount returns the total number of people matching the query.
func (c *Client) SearchCount(ctx context.Context, q SearchQuery) (int, error) {
	var env resultEnvelope
	if _, err := c.get(ctx, "search_count", "/person/search-count", searchParams(q, false), &env); err != nil {
		return 0, err
	}
	return env.Result.Count, nil
}

// Search returns one page of people matching the query.
func (c *Client) Search(ctx context.Context, q SearchQuery) ([]api.Person, error) {
	var env resultEnvelope
	if _, err := c.get(ctx, "search", "/person/search", searchParams(q, true), &env); err != nil {
		return nil, err
	}
	if env.Result.People == nil {
		return []api.Person{}, nil
	}
	return env.Result.People, nil
}

// GetPerson fetches a person by scheme-qualified identifier. Returns
// (nil, nil) when no such person exists.
func (c *Client) GetPerson(ctx context.Context, scheme, identifier, fetch string) (*api.Person, error) {
	var env resultEnvelope
	path := fmt.Sprintf("/person/%s/%s", scheme, identifier)
	found, err := c.get(ctx, "get_person", path, fetchParams(fetch), &env)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return env.Result.Person, nil
}

// GetGroup fetches a group by groupid. Returns (nil, nil) when no such
// group exists.
func (c *Client) GetGroup(ctx context.Context, groupid, fetch string) (*api.Group, error) {
	var env resultEnvelope
	found, err := c.get(ctx, "get_group", "/group/"+groupid, fetchParams(fetch), &env)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return env.Result.Group, nil
}

// GetInstitution fetches an institution by instid. Returns (nil, nil) when
// no such institution exists.
func (c *Client) GetInstitution(ctx context.Context, instid, fetch string) (*api.Institution, error) {
	var env resultEnvelope
	found, err := c.get(ctx, "get_institution", "/inst/"+instid, fetchParams(fetch), &env)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return env.Result.Institution, nil
}

// AllInstitutions lists every institution, optionally including cancelled
// ones.
func (c *Client) AllInstitutions(ctx context.Context, includeCancelled bool, fetch string) ([]api.Institution, error) {
	params := map[string]string{
		"includeCancelled": strconv.FormatBool(includeCancelled),
	}
	if fetch != "" {
		params["fetch"] = fetch
	}
	var env resultEnvelope
	if _, err := c.get(ctx, "all_institutions", "/inst/all-insts", params, &env); err != nil {
		return nil, err
	}
	if env.Result.Institutions == nil {
		return []api.Institution{}, nil
	}
	return env.Result.Institutions, nil
}

// PersonAttributeSchemes lists all attribute schemes valid for people.
func (c *Client) PersonAttributeSchemes(ctx context.Context) ([]api.AttributeScheme, error) {
	return c.attributeSchemes(ctx, "person_attribute_schemes", "/person/all-attr-schemes")
}

// InstitutionAttributeSchemes lists all attribute schemes valid for
// institutions.
func (c *Client) InstitutionAttributeSchemes(ctx context.Context) ([]api.AttributeScheme, error) {
	return c.attributeSchemes(ctx, "institution_attribute_schemes", "/inst/all-attr-schemes")
}

func (c *Client) attributeSchemes(ctx context.Context, operation, path string) ([]api.AttributeScheme, error) {
	var env resultEnvelope
	if _, err := c.get(ctx, operation, path, nil, &env); err != nil {
		return nil, err
	}
	if env.Result.AttributeSchemes == nil {
		return []api.AttributeScheme{}, nil
	}
	return env.Result.AttributeSchemes, nil
}
