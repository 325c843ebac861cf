package auth

import (
	"sort"
	"strings"
)

// ScopeAnonymous is the scope required to access the directory endpoints.
const ScopeAnonymous = "lookup:anonymous"

// ScopeSet is an unordered set of OAuth2 scope strings.
type ScopeSet map[string]struct{}

// NewScopeSet builds a ScopeSet from the given scopes.
func NewScopeSet(scopes ...string) ScopeSet {
	s := make(ScopeSet, len(scopes))
	for _, scope := range scopes {
		if scope != "" {
			s[scope] = struct{}{}
		}
	}
	return s
}

// ParseScopes parses a space-delimited scope string (the RFC 7662 "scope"
// field) into a ScopeSet. An empty string yields an empty, non-nil set.
func ParseScopes(s string) ScopeSet {
	return NewScopeSet(strings.Fields(s)...)
}

// Contains reports whether the set contains the given scope.
func (s ScopeSet) Contains(scope string) bool {
	_, ok := s[scope]
	return ok
}

// ContainsAll reports whether every scope in required is present in s.
// An empty required set is trivially contained.
func (s ScopeSet) ContainsAll(required ScopeSet) bool {
	for scope := range required {
		if !s.Contains(scope) {
			return false
		}
	}
	return true
}

// Strings returns the scopes in sorted order, for logging.
func (s ScopeSet) Strings() []string {
	out := make([]string, 0, len(s))
	for scope := range s {
		out = append(out, scope)
	}
	sort.Strings(out)
	return out
}
