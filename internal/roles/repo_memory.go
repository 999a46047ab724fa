package roles

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu       sync.RWMutex
	roles    map[string]Role         // lower title -> role
	mappings map[string]SkillMapping // lower skill -> mapping
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		roles:    make(map[string]Role),
		mappings: make(map[string]SkillMapping),
	}
}

// GetRoleByTitle returns the role with the exact title.
func (r *MemoryRepo) GetRoleByTitle(ctx context.Context, title string) (Role, error) {
	if err := ctx.Err(); err != nil {
		return Role{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	role, ok := r.roles[strings.ToLower(title)]
	if !ok || role.Title != title {
		return Role{}, ErrNotFound
	}
	return role, nil
}

// ListRolesByTitles returns known roles in request order.
func (r *MemoryRepo) ListRolesByTitles(ctx context.Context, titles []string) ([]Role, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Role, 0, len(titles))
	for _, title := range titles {
		if role, ok := r.roles[strings.ToLower(title)]; ok {
			out = append(out, role)
		}
	}
	return out, nil
}

// ListRoles returns all roles, optionally filtered by industry, title-sorted.
func (r *MemoryRepo) ListRoles(ctx context.Context, industry string) ([]Role, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Role, 0, len(r.roles))
	for _, role := range r.roles {
		if industry != "" && !strings.EqualFold(role.Industry, industry) {
			continue
		}
		out = append(out, role)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
	})
	return out, nil
}

// UpsertRole stores the role keyed by its title.
func (r *MemoryRepo) UpsertRole(ctx context.Context, role Role) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.roles[strings.ToLower(role.Title)] = role
	return nil
}

// ListMappingsBySkills returns known mappings in request order.
func (r *MemoryRepo) ListMappingsBySkills(ctx context.Context, skills []string) ([]SkillMapping, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]SkillMapping, 0, len(skills))
	for _, skill := range skills {
		if mapping, ok := r.mappings[strings.ToLower(skill)]; ok {
			out = append(out, mapping)
		}
	}
	return out, nil
}

// UpsertMapping stores the mapping keyed by its lower-cased skill.
func (r *MemoryRepo) UpsertMapping(ctx context.Context, mapping SkillMapping) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	mapping.Skill = strings.ToLower(strings.TrimSpace(mapping.Skill))
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mappings[mapping.Skill] = mapping
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
