package auth

import (
	"net/http"
	"strings"
)

// bearerPrefix is the case-sensitive Authorization scheme prefix.
const bearerPrefix = "Bearer "

// ExtractBearer returns the bearer token from the request's Authorization
// header. ok is false when the header is absent, uses another scheme, or
// carries an empty token. A missing token is a normal anonymous-request
// state, never an error.
func ExtractBearer(r *http.Request) (token string, ok bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token = header[len(bearerPrefix):]
	if token == "" {
		return "", false
	}
	return token, true
}
