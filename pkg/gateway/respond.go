package gateway

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/msb/lookupproxy/pkg/api"
	"github.com/msb/lookupproxy/pkg/ibis"
	"github.com/msb/lookupproxy/pkg/transport"
)

// writeJSON writes v as the JSON response body with status 200.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// writeNotFound writes the standard 404 response for a missing directory
// record.
func writeNotFound(w http.ResponseWriter) {
	transport.WriteAPIError(w, api.NewNotFoundError("no such record"))
}

// writeDirectoryError maps a directory backend failure to a response:
// an unreachable backend is 502, anything else is 500.
func (h *Handler) writeDirectoryError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("directory request failed",
		"path", r.URL.Path,
		"error", err,
	)
	if errors.Is(err, ibis.ErrUnavailable) {
		transport.WriteAPIError(w, api.NewBadGatewayError("directory backend unavailable"))
		return
	}
	transport.WriteAPIError(w, api.NewServerError("internal server error"))
}
