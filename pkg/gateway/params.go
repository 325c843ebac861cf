package gateway

import (
	"net/http"
	"strconv"

	"github.com/msb/lookupproxy/pkg/api"
	"github.com/msb/lookupproxy/pkg/ibis"
)

const (
	defaultSearchLimit   = 100
	defaultSearchOrderBy = "surname"
)

// parseSearchQuery reads the person search parameters from the query
// string, applying the documented defaults.
func parseSearchQuery(r *http.Request) (ibis.SearchQuery, *api.APIError) {
	qs := r.URL.Query()

	q := ibis.SearchQuery{
		Query:   qs.Get("query"),
		Fetch:   qs.Get("fetch"),
		Limit:   defaultSearchLimit,
		OrderBy: defaultSearchOrderBy,
	}
	if q.Query == "" {
		return q, api.NewInvalidRequestError("query", "the query parameter is required")
	}

	var apiErr *api.APIError
	if q.ApproxMatches, apiErr = parseBool(qs.Get("approxMatches"), "approxMatches"); apiErr != nil {
		return q, apiErr
	}
	if q.IncludeCancelled, apiErr = parseBool(qs.Get("includeCancelled"), "includeCancelled"); apiErr != nil {
		return q, apiErr
	}

	switch qs.Get("misStatus") {
	case "", "staff", "student":
		q.MISStatus = qs.Get("misStatus")
	default:
		return q, api.NewInvalidRequestError("misStatus", `must be "staff" or "student"`)
	}

	q.Attributes = qs.Get("attributes")

	if v := qs.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return q, api.NewInvalidRequestError("offset", "must be a non-negative integer")
		}
		q.Offset = n
	}
	if v := qs.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return q, api.NewInvalidRequestError("limit", "must be a positive integer")
		}
		q.Limit = n
	}

	switch qs.Get("orderBy") {
	case "":
		// keep default
	case "identifier", "surname":
		q.OrderBy = qs.Get("orderBy")
	default:
		return q, api.NewInvalidRequestError("orderBy", `must be "identifier" or "surname"`)
	}

	return q, nil
}

// parseBool parses an optional boolean query parameter. Absent means false.
func parseBool(v, param string) (bool, *api.APIError) {
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, api.NewInvalidRequestError(param, "must be a boolean")
	}
	return b, nil
}
