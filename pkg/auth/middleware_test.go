package auth

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/msb/lookupproxy/pkg/auth/introspect"
)

func newMiddlewareGate(t *testing.T, scope string) *Gate {
	t.Helper()
	now := time.Now()
	f := &fakeIntrospector{results: map[string]*introspect.Result{
		"GOOD_TOKEN": {
			Active:    true,
			IssuedAt:  ts(now.Add(-time.Hour)),
			ExpiresAt: ts(now.Add(time.Hour)),
			Scope:     scope,
			Subject:   "spqr1",
		},
	}}
	return newTestGate(now, f)
}

func TestRequireScopes_NoToken(t *testing.T) {
	mw := RequireScopes(newMiddlewareGate(t, ScopeAnonymous), nil, ScopeAnonymous)
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run for unauthenticated request")
	}))

	req := httptest.NewRequest("GET", "/people", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestRequireScopes_ValidToken(t *testing.T) {
	mw := RequireScopes(newMiddlewareGate(t, ScopeAnonymous), nil, ScopeAnonymous)

	var gotOutcome Outcome
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotOutcome = OutcomeFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/people", nil)
	req.Header.Set("Authorization", "Bearer GOOD_TOKEN")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !gotOutcome.Authenticated {
		t.Error("expected authenticated outcome in handler context")
	}
	if gotOutcome.Subject != "spqr1" {
		t.Errorf("Subject = %q, want %q", gotOutcome.Subject, "spqr1")
	}
}

func TestRequireScopes_InsufficientScope(t *testing.T) {
	mw := RequireScopes(newMiddlewareGate(t, ScopeAnonymous), nil, ScopeAnonymous, "lookup:admin")
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run with insufficient scope")
	}))

	req := httptest.NewRequest("GET", "/people", nil)
	req.Header.Set("Authorization", "Bearer GOOD_TOKEN")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestRequireScopes_IntrospectionUnavailable(t *testing.T) {
	f := &fakeIntrospector{err: fmt.Errorf("%w: timeout", introspect.ErrUnavailable)}
	mw := RequireScopes(newTestGate(time.Now(), f), nil, ScopeAnonymous)
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run when introspection is unavailable")
	}))

	req := httptest.NewRequest("GET", "/people", nil)
	req.Header.Set("Authorization", "Bearer ANY_TOKEN")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	// Fail closed: dependency failure maps to 401.
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

// The 401 body must not reveal why a token was refused: absent, inactive
// and expired tokens all produce an identical response.
func TestRequireScopes_UniformRejectionBody(t *testing.T) {
	now := time.Now()
	f := &fakeIntrospector{results: map[string]*introspect.Result{
		"PAST_TOKEN": {
			Active:    true,
			IssuedAt:  ts(now.Add(-3 * time.Hour)),
			ExpiresAt: ts(now.Add(-time.Hour)),
		},
	}}
	mw := RequireScopes(newTestGate(now, f), nil, ScopeAnonymous)
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	bodies := map[string]string{}
	for name, header := range map[string]string{
		"absent":   "",
		"inactive": "Bearer UNKNOWN_TOKEN",
		"expired":  "Bearer PAST_TOKEN",
	} {
		req := httptest.NewRequest("GET", "/people", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: status = %d, want 401", name, rec.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: invalid JSON body: %v", name, err)
		}
		bodies[name] = rec.Body.String()
	}

	if bodies["absent"] != bodies["inactive"] || bodies["inactive"] != bodies["expired"] {
		t.Errorf("rejection bodies differ: %v", bodies)
	}
}
