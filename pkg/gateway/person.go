package gateway

import (
	"net/http"

	"github.com/msb/lookupproxy/pkg/api"
	"github.com/msb/lookupproxy/pkg/auth"
	"github.com/msb/lookupproxy/pkg/transport"
)

// SearchPeople serves GET /people: free-text person search using the same
// search function as the Lookup web application. The count is computed with
// the count-only backend call so the response can report the total number
// of matches alongside the requested page.
func (h *Handler) SearchPeople(w http.ResponseWriter, r *http.Request) {
	q, apiErr := parseSearchQuery(r)
	if apiErr != nil {
		transport.WriteAPIError(w, apiErr)
		return
	}

	count, err := h.dir.SearchCount(r.Context(), q)
	if err != nil {
		h.writeDirectoryError(w, r, err)
		return
	}

	results, err := h.dir.Search(r.Context(), q)
	if err != nil {
		h.writeDirectoryError(w, r, err)
		return
	}

	writeJSON(w, api.PersonList{
		Results: results,
		Count:   count,
		Offset:  q.Offset,
		Limit:   q.Limit,
	})
}

// Person serves GET /people/{scheme}/{identifier}.
func (h *Handler) Person(w http.ResponseWriter, r *http.Request) {
	person, err := h.dir.GetPerson(
		r.Context(),
		r.PathValue("scheme"),
		r.PathValue("identifier"),
		r.URL.Query().Get("fetch"),
	)
	if err != nil {
		h.writeDirectoryError(w, r, err)
		return
	}
	if person == nil {
		writeNotFound(w)
		return
	}
	writeJSON(w, person)
}

// PersonSelf serves GET /people/token/self: the person the presented token
// belongs to. The token subject comes from the introspection response; a
// token with no subject (e.g. a pure client-credentials token) resolves to
// no record.
func (h *Handler) PersonSelf(w http.ResponseWriter, r *http.Request) {
	outcome := auth.OutcomeFromContext(r.Context())
	if outcome.Subject == "" {
		writeNotFound(w)
		return
	}

	person, err := h.dir.GetPerson(r.Context(), "crsid", outcome.Subject, r.URL.Query().Get("fetch"))
	if err != nil {
		h.writeDirectoryError(w, r, err)
		return
	}
	if person == nil {
		writeNotFound(w)
		return
	}
	writeJSON(w, person)
}
