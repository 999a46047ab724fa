package match

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a role is looked up by explicit title and
// does not exist.
var ErrNotFound = errors.New("role not found")

// RoleStore provides read access to role definitions.
type RoleStore interface {
	// GetByTitle returns the role with the exact title, or ErrNotFound.
	GetByTitle(ctx context.Context, title string) (Role, error)
	// ListByTitles returns the roles for the given titles, preserving
	// request order. Unknown titles are skipped, never an error.
	ListByTitles(ctx context.Context, titles []string) ([]Role, error)
}

// MappingStore provides read access to skill -> role affinity records.
type MappingStore interface {
	// ListBySkills returns the mappings for the given lower-cased skill
	// names, preserving request order. Unknown skills are skipped.
	ListBySkills(ctx context.Context, skills []string) ([]SkillMapping, error)
}

// Enricher attaches market context to a recommended role. Implementations
// may call external market-data services; the ranker treats any failure as
// non-fatal and falls back to defaults.
type Enricher interface {
	Enrich(ctx context.Context, role Role) (Market, error)
}
