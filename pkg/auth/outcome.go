package auth

// Outcome is the result of authenticating one request. It is never
// partially populated: either Authenticated is true and Scopes is non-nil
// (possibly empty), or it is the zero rejected outcome.
//
// No principal is resolved from the token. Subject carries the token's
// "sub" claim when the introspection endpoint reports one; it is
// informational (used by the self-lookup endpoint) and plays no part in
// authorization.
type Outcome struct {
	Authenticated bool
	Scopes        ScopeSet
	Subject       string
}

// Rejected returns the outcome for a request that could not be
// authenticated.
func Rejected() Outcome {
	return Outcome{}
}

// Authenticated returns an authenticated outcome carrying the granted
// scopes. A nil scope set is normalized to an empty one.
func Authenticated(scopes ScopeSet, subject string) Outcome {
	if scopes == nil {
		scopes = ScopeSet{}
	}
	return Outcome{Authenticated: true, Scopes: scopes, Subject: subject}
}

// Decision is the authorization verdict for one request.
type Decision int

const (
	// Permit allows the request to proceed to its handler.
	Permit Decision = iota

	// Deny rejects the request. An unauthenticated deny maps to 401, an
	// authenticated one (insufficient scope) to 403.
	Deny
)

// Authorize compares the authentication outcome against the endpoint's
// required scope set. Permit iff the outcome is authenticated and every
// required scope was granted; a rejected outcome always denies.
func Authorize(outcome Outcome, required ScopeSet) Decision {
	if !outcome.Authenticated {
		return Deny
	}
	if !outcome.Scopes.ContainsAll(required) {
		return Deny
	}
	return Permit
}
