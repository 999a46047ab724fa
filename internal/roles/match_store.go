package roles

import (
	"context"
	"errors"

	"jobsearch-backend/internal/match"
)

// MatchStore adapts the roles repository to the match engine's store
// interfaces.
type MatchStore struct {
	Repo Repo
}

// GetByTitle implements match.RoleStore.
func (s MatchStore) GetByTitle(ctx context.Context, title string) (match.Role, error) {
	role, err := s.Repo.GetRoleByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return match.Role{}, match.ErrNotFound
		}
		return match.Role{}, err
	}
	return toMatchRole(role), nil
}

// ListByTitles implements match.RoleStore.
func (s MatchStore) ListByTitles(ctx context.Context, titles []string) ([]match.Role, error) {
	found, err := s.Repo.ListRolesByTitles(ctx, titles)
	if err != nil {
		return nil, err
	}
	out := make([]match.Role, 0, len(found))
	for _, role := range found {
		out = append(out, toMatchRole(role))
	}
	return out, nil
}

// ListBySkills implements match.MappingStore.
func (s MatchStore) ListBySkills(ctx context.Context, skills []string) ([]match.SkillMapping, error) {
	found, err := s.Repo.ListMappingsBySkills(ctx, skills)
	if err != nil {
		return nil, err
	}
	out := make([]match.SkillMapping, 0, len(found))
	for _, mapping := range found {
		entries := make([]match.RoleAffinity, 0, len(mapping.Roles))
		for _, role := range mapping.Roles {
			entries = append(entries, match.RoleAffinity{Title: role.Title, Relevance: role.RelevanceScore})
		}
		out = append(out, match.SkillMapping{Skill: mapping.Skill, Roles: entries})
	}
	return out, nil
}

func toMatchRole(role Role) match.Role {
	return match.Role{
		Title:           role.Title,
		Description:     role.Description,
		RequiredSkills:  role.RequiredSkills,
		RelatedSkills:   role.RelatedSkills,
		AverageSalary:   role.AverageSalary,
		Industry:        role.Industry,
		ExperienceLevel: role.ExperienceLevel,
	}
}

var (
	_ match.RoleStore    = MatchStore{}
	_ match.MappingStore = MatchStore{}
)
