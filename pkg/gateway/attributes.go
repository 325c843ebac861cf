package gateway

import (
	"net/http"

	"github.com/msb/lookupproxy/pkg/api"
)

// PersonAttributeSchemes serves GET /attributes/people: all valid attribute
// schemes for a person.
func (h *Handler) PersonAttributeSchemes(w http.ResponseWriter, r *http.Request) {
	schemes, err := h.dir.PersonAttributeSchemes(r.Context())
	if err != nil {
		h.writeDirectoryError(w, r, err)
		return
	}
	writeJSON(w, api.AttributeSchemeList{Results: schemes})
}

// InstitutionAttributeSchemes serves GET /attributes/institutions: all
// valid attribute schemes for an institution.
func (h *Handler) InstitutionAttributeSchemes(w http.ResponseWriter, r *http.Request) {
	schemes, err := h.dir.InstitutionAttributeSchemes(r.Context())
	if err != nil {
		h.writeDirectoryError(w, r, err)
		return
	}
	writeJSON(w, api.AttributeSchemeList{Results: schemes})
}
