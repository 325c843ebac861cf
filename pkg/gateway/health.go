package gateway

import (
	"net/http"

	"github.com/msb/lookupproxy/pkg/api"
)

// Health serves GET /healthz. Returns 200 while the application is running;
// usable as a readiness probe.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, api.Health{Status: "ok"})
}
