package roles

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("role not found")

// Repo defines persistence operations for role definitions and skill
// mappings.
type Repo interface {
	GetRoleByTitle(ctx context.Context, title string) (Role, error)
	// ListRolesByTitles returns roles in request order; unknown titles are
	// skipped.
	ListRolesByTitles(ctx context.Context, titles []string) ([]Role, error)
	// ListRoles returns roles, optionally filtered by industry.
	ListRoles(ctx context.Context, industry string) ([]Role, error)
	UpsertRole(ctx context.Context, role Role) error

	// ListMappingsBySkills returns mappings for the lower-cased skill names
	// in request order; unknown skills are skipped.
	ListMappingsBySkills(ctx context.Context, skills []string) ([]SkillMapping, error)
	UpsertMapping(ctx context.Context, mapping SkillMapping) error
}
