package match

import (
	"context"
	"strings"
)

// fakeStores serves canned roles and mappings for engine tests.
type fakeStores struct {
	roles    []Role
	mappings []SkillMapping
	rolesErr error
	mapErr   error
}

func (f *fakeStores) GetByTitle(_ context.Context, title string) (Role, error) {
	if f.rolesErr != nil {
		return Role{}, f.rolesErr
	}
	for _, role := range f.roles {
		if role.Title == title {
			return role, nil
		}
	}
	return Role{}, ErrNotFound
}

func (f *fakeStores) ListByTitles(_ context.Context, titles []string) ([]Role, error) {
	if f.rolesErr != nil {
		return nil, f.rolesErr
	}
	byTitle := make(map[string]Role, len(f.roles))
	for _, role := range f.roles {
		byTitle[role.Title] = role
	}
	out := make([]Role, 0, len(titles))
	for _, title := range titles {
		if role, ok := byTitle[title]; ok {
			out = append(out, role)
		}
	}
	return out, nil
}

func (f *fakeStores) ListBySkills(_ context.Context, skills []string) ([]SkillMapping, error) {
	if f.mapErr != nil {
		return nil, f.mapErr
	}
	bySkill := make(map[string]SkillMapping, len(f.mappings))
	for _, mapping := range f.mappings {
		bySkill[strings.ToLower(mapping.Skill)] = mapping
	}
	out := make([]SkillMapping, 0, len(skills))
	for _, skill := range skills {
		if mapping, ok := bySkill[strings.ToLower(skill)]; ok {
			out = append(out, mapping)
		}
	}
	return out, nil
}

func javascriptMapping() SkillMapping {
	return SkillMapping{
		Skill: "javascript",
		Roles: []RoleAffinity{
			{Title: "Software Developer", Relevance: 95},
			{Title: "Frontend Developer", Relevance: 100},
			{Title: "Full Stack Developer", Relevance: 90},
			{Title: "Web Developer", Relevance: 95},
		},
	}
}
