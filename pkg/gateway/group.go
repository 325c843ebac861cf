package gateway

import "net/http"

// Group serves GET /groups/{groupid}.
func (h *Handler) Group(w http.ResponseWriter, r *http.Request) {
	group, err := h.dir.GetGroup(r.Context(), r.PathValue("groupid"), r.URL.Query().Get("fetch"))
	if err != nil {
		h.writeDirectoryError(w, r, err)
		return
	}
	if group == nil {
		writeNotFound(w)
		return
	}
	writeJSON(w, group)
}
