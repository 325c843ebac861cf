// Package auth implements bearer-token authentication and scope-based
// authorization for the lookup proxy.
//
// Every protected request passes through the same pipeline: the bearer token
// is extracted from the Authorization header, validated against the OAuth2
// introspection endpoint (package introspect), and the resulting outcome is
// checked against the endpoint's required scope set. The outcome is binary:
// a request is either authenticated with a granted scope set, or rejected.
// No user identity is resolved from the token; only scopes drive
// authorization.
//
// Auth is implemented as HTTP middleware holding an explicitly constructed
// Gate, keeping it decoupled from handler logic. There is deliberately no
// caching of introspection results: a revoked token is refused on the very
// next request.
package auth
