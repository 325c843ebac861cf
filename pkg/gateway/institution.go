package gateway

import (
	"net/http"

	"github.com/msb/lookupproxy/pkg/api"
	"github.com/msb/lookupproxy/pkg/transport"
)

// Institutions serves GET /institutions: all institutions, optionally
// including cancelled ones.
func (h *Handler) Institutions(w http.ResponseWriter, r *http.Request) {
	includeCancelled, apiErr := parseBool(r.URL.Query().Get("includeCancelled"), "includeCancelled")
	if apiErr != nil {
		transport.WriteAPIError(w, apiErr)
		return
	}

	insts, err := h.dir.AllInstitutions(r.Context(), includeCancelled, r.URL.Query().Get("fetch"))
	if err != nil {
		h.writeDirectoryError(w, r, err)
		return
	}
	writeJSON(w, api.InstitutionList{Results: insts})
}

// Institution serves GET /institutions/{instid}.
func (h *Handler) Institution(w http.ResponseWriter, r *http.Request) {
	inst, err := h.dir.GetInstitution(r.Context(), r.PathValue("instid"), r.URL.Query().Get("fetch"))
	if err != nil {
		h.writeDirectoryError(w, r, err)
		return
	}
	if inst == nil {
		writeNotFound(w)
		return
	}
	writeJSON(w, inst)
}
