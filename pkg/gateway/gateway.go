// Package gateway implements the REST resource handlers of the lookup
// proxy: person, group and institution lookup backed by the ibis directory
// service, each guarded by bearer-token authentication and scope
// authorization.
//
// Handlers hold explicit references to their collaborators (the directory
// client and the authentication gate); there is no inherited behavior and
// no module-level state. Required scopes are declared per route when the
// mux is built.
package gateway

import (
	"context"
	"log/slog"

	"github.com/msb/lookupproxy/pkg/api"
	"github.com/msb/lookupproxy/pkg/ibis"
)

// Directory is the capability contract the handlers need from the ibis
// backend. Absent records are (nil, nil), never errors.
type Directory interface {
	SearchCount(ctx context.Context, q ibis.SearchQuery) (int, error)
	Search(ctx context.Context, q ibis.SearchQuery) ([]api.Person, error)
	GetPerson(ctx context.Context, scheme, identifier, fetch string) (*api.Person, error)
	GetGroup(ctx context.Context, groupid, fetch string) (*api.Group, error)
	GetInstitution(ctx context.Context, instid, fetch string) (*api.Institution, error)
	AllInstitutions(ctx context.Context, includeCancelled bool, fetch string) ([]api.Institution, error)
	PersonAttributeSchemes(ctx context.Context) ([]api.AttributeScheme, error)
	InstitutionAttributeSchemes(ctx context.Context) ([]api.AttributeScheme, error)
}

// Handler serves the directory resource endpoints.
type Handler struct {
	dir    Directory
	logger *slog.Logger
}

// NewHandler creates the resource handler set around a directory backend.
func NewHandler(dir Directory, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{dir: dir, logger: logger}
}
