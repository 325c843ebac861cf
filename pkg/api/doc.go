// Package api defines the wire types served by the lookup proxy: directory
// records (people, groups, institutions and their attributes) as returned by
// the ibis backend, and the structured error envelope used by every endpoint.
//
// Record fields mirror the ibis JSON names so that the proxy stays a faithful
// passthrough; optional collections are only populated when the request's
// fetch parameter asked for them.
package api
