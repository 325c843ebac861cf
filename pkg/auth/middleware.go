package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/msb/lookupproxy/pkg/api"
	"github.com/msb/lookupproxy/pkg/observability"
)

// RequireScopes creates HTTP middleware that authenticates the request via
// the gate and permits it only when the granted scopes cover every required
// scope. The authenticated outcome is injected into the request context for
// handlers that read the token subject.
//
// Status mapping: no token or an invalid token yields 401; an introspection
// dependency failure also yields 401 (fail closed) but is logged and counted
// as an infrastructure failure, never as an invalid token; an authenticated
// request with insufficient scope yields 403. The 401 body is identical in
// all cases so the response never reveals why a token was refused.
func RequireScopes(gate *Gate, logger *slog.Logger, scopes ...string) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	required := NewScopeSet(scopes...)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			outcome, err := gate.Authenticate(r.Context(), r)
			if err != nil {
				logger.Error("token introspection unavailable",
					"path", r.URL.Path,
					"error", err,
				)
				observability.AuthRequestsTotal.WithLabelValues("unavailable").Inc()
				writeAuthError(w, http.StatusUnauthorized, api.NewUnauthenticatedError())
				return
			}

			switch Authorize(outcome, required) {
			case Permit:
				observability.AuthRequestsTotal.WithLabelValues("authenticated").Inc()
				next.ServeHTTP(w, r.WithContext(SetOutcome(r.Context(), outcome)))

			case Deny:
				if outcome.Authenticated {
					logger.Warn("insufficient scope",
						"path", r.URL.Path,
						"granted", outcome.Scopes.Strings(),
						"required", required.Strings(),
					)
					observability.AuthRequestsTotal.WithLabelValues("forbidden").Inc()
					writeAuthError(w, http.StatusForbidden, api.NewForbiddenError())
					return
				}
				logger.Debug("request not authenticated", "path", r.URL.Path)
				observability.AuthRequestsTotal.WithLabelValues("rejected").Inc()
				writeAuthError(w, http.StatusUnauthorized, api.NewUnauthenticatedError())
			}
		})
	}
}

func writeAuthError(w http.ResponseWriter, status int, apiErr *api.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(api.ErrorResponse{Error: apiErr})
}
