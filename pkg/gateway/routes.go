package gateway

import (
	"log/slog"
	"net/http"

	"github.com/msb/lookupproxy/pkg/auth"
)

// Routes builds the route mux. Every directory resource is wrapped in the
// auth middleware with its required scope set; /healthz stays open so it
// can serve as a readiness probe without incurring introspection latency.
func Routes(h *Handler, gate *auth.Gate, logger *slog.Logger) http.Handler {
	protect := auth.RequireScopes(gate, logger, auth.ScopeAnonymous)

	mux := http.NewServeMux()

	mux.Handle("GET /people", protect(http.HandlerFunc(h.SearchPeople)))
	mux.Handle("GET /people/token/self", protect(http.HandlerFunc(h.PersonSelf)))
	mux.Handle("GET /people/{scheme}/{identifier}", protect(http.HandlerFunc(h.Person)))
	mux.Handle("GET /groups/{groupid}", protect(http.HandlerFunc(h.Group)))
	mux.Handle("GET /institutions", protect(http.HandlerFunc(h.Institutions)))
	mux.Handle("GET /institutions/{instid}", protect(http.HandlerFunc(h.Institution)))
	mux.Handle("GET /attributes/people", protect(http.HandlerFunc(h.PersonAttributeSchemes)))
	mux.Handle("GET /attributes/institutions", protect(http.HandlerFunc(h.InstitutionAttributeSchemes)))

	mux.HandleFunc("GET /healthz", h.Health)

	return mux
}
