package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/msb/lookupproxy/pkg/auth/introspect"
)

// Introspector is the capability the gate needs from the introspection
// client. Test code substitutes a fake returning scripted results.
type Introspector interface {
	Introspect(ctx context.Context, token string) (*introspect.Result, error)
}

// Gate authenticates one request: extract the bearer token, introspect it,
// and validate the result against the current time. It is stateless per
// invocation; the injected introspector is its only shared state.
type Gate struct {
	introspector Introspector
	logger       *slog.Logger
	now          func() time.Time
}

// GateOption configures a Gate.
type GateOption func(*Gate)

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) GateOption {
	return func(g *Gate) { g.logger = l }
}

// WithClock sets the time source used for validity checks. Used in tests.
func WithClock(now func() time.Time) GateOption {
	return func(g *Gate) { g.now = now }
}

// NewGate creates a gate around the given introspector.
func NewGate(i Introspector, opts ...GateOption) *Gate {
	g := &Gate{
		introspector: i,
		logger:       slog.Default(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Authenticate produces the authentication outcome for the request.
//
// A request without a bearer token is rejected immediately, without an
// introspection call. An unreachable introspection endpoint is returned as
// an error (wrapping introspect.ErrUnavailable) rather than folded into a
// rejection: the caller decides how a dependency failure maps to a
// response, and it must never be confused with an invalid token.
func (g *Gate) Authenticate(ctx context.Context, r *http.Request) (Outcome, error) {
	token, ok := ExtractBearer(r)
	if !ok {
		return Rejected(), nil
	}

	result, err := g.introspector.Introspect(ctx, token)
	if err != nil {
		return Rejected(), fmt.Errorf("introspecting token: %w", err)
	}

	status := result.StatusAt(g.now())
	switch status {
	case introspect.StatusValid:
		return Authenticated(ParseScopes(result.Scope), result.Subject), nil
	case introspect.StatusMalformed:
		// active=true without a validity window is a backend anomaly.
		g.logger.Error("malformed introspection response", "status", status.String())
		return Rejected(), nil
	default:
		g.logger.Debug("token rejected", "status", status.String())
		return Rejected(), nil
	}
}
