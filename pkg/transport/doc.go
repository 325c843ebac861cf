// Package transport provides the HTTP-level cross-cutting middleware for the
// lookup proxy (panic recovery, request IDs, structured request logging) and
// helpers to write structured error responses.
//
// Middleware is explicit composition: Chain(Recovery(l), RequestID(),
// Logging(l)) produces a single wrapper applied to the route mux. Each stage
// is an ordinary func(http.Handler) http.Handler with no hidden state.
package transport
