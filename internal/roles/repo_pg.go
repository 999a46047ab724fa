package roles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// PGRepo implements Repo using Postgres. Skill lists and mapping entries are
// stored as JSONB columns.
type PGRepo struct {
	DB *sql.DB
}

const roleColumns = `id, title, description, required_skills, related_skills, average_salary, growth_rate, industry, experience_level, created_at, updated_at`

// GetRoleByTitle fetches a role by exact title.
func (r *PGRepo) GetRoleByTitle(ctx context.Context, title string) (Role, error) {
	query := `
SELECT ` + roleColumns + `
FROM roles
WHERE title = $1
LIMIT 1`
	role, err := scanRole(r.DB.QueryRowContext(ctx, query, title))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Role{}, ErrNotFound
		}
		return Role{}, err
	}
	return role, nil
}

// ListRolesByTitles fetches roles for a title set, preserving request order.
func (r *PGRepo) ListRolesByTitles(ctx context.Context, titles []string) ([]Role, error) {
	if len(titles) == 0 {
		return []Role{}, nil
	}
	query := `
SELECT ` + roleColumns + `
FROM roles
WHERE title = ANY($1)`
	rows, err := r.DB.QueryContext(ctx, query, titles)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byTitle := make(map[string]Role, len(titles))
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		byTitle[role.Title] = role
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]Role, 0, len(titles))
	for _, title := range titles {
		if role, ok := byTitle[title]; ok {
			out = append(out, role)
		}
	}
	return out, nil
}

// ListRoles fetches all roles, optionally filtered by industry.
func (r *PGRepo) ListRoles(ctx context.Context, industry string) ([]Role, error) {
	query := `
SELECT ` + roleColumns + `
FROM roles
WHERE ($1 = '' OR industry ILIKE $1)
ORDER BY title ASC`
	rows, err := r.DB.QueryContext(ctx, query, industry)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Role
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, role)
	}
	return out, rows.Err()
}

// UpsertRole inserts or updates a role keyed by title.
func (r *PGRepo) UpsertRole(ctx context.Context, role Role) error {
	const query = `
INSERT INTO roles (id, title, description, required_skills, related_skills, average_salary, growth_rate, industry, experience_level, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
ON CONFLICT (title) DO UPDATE SET
    description = EXCLUDED.description,
    required_skills = EXCLUDED.required_skills,
    related_skills = EXCLUDED.related_skills,
    average_salary = EXCLUDED.average_salary,
    growth_rate = EXCLUDED.growth_rate,
    industry = EXCLUDED.industry,
    experience_level = EXCLUDED.experience_level,
    updated_at = EXCLUDED.updated_at`

	required, err := json.Marshal(stringsOrEmpty(role.RequiredSkills))
	if err != nil {
		return fmt.Errorf("marshal required skills: %w", err)
	}
	related, err := json.Marshal(stringsOrEmpty(role.RelatedSkills))
	if err != nil {
		return fmt.Errorf("marshal related skills: %w", err)
	}

	now := role.UpdatedAt
	if now.IsZero() {
		now = time.Now().UTC()
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		role.ID,
		role.Title,
		role.Description,
		required,
		related,
		role.AverageSalary,
		role.GrowthRate,
		role.Industry,
		role.ExperienceLevel,
		now,
	)
	return err
}

// ListMappingsBySkills fetches mappings for a lower-cased skill set,
// preserving request order.
func (r *PGRepo) ListMappingsBySkills(ctx context.Context, skills []string) ([]SkillMapping, error) {
	if len(skills) == 0 {
		return []SkillMapping{}, nil
	}
	const query = `
SELECT id, skill, roles, created_at, updated_at
FROM skill_mappings
WHERE skill = ANY($1)`
	rows, err := r.DB.QueryContext(ctx, query, skills)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bySkill := make(map[string]SkillMapping, len(skills))
	for rows.Next() {
		var mapping SkillMapping
		var rolesJSON []byte
		if err := rows.Scan(&mapping.ID, &mapping.Skill, &rolesJSON, &mapping.CreatedAt, &mapping.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(rolesJSON, &mapping.Roles); err != nil {
			return nil, fmt.Errorf("unmarshal mapping roles for %q: %w", mapping.Skill, err)
		}
		bySkill[mapping.Skill] = mapping
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]SkillMapping, 0, len(skills))
	for _, skill := range skills {
		if mapping, ok := bySkill[strings.ToLower(skill)]; ok {
			out = append(out, mapping)
		}
	}
	return out, nil
}

// UpsertMapping inserts or updates a skill mapping keyed by skill.
func (r *PGRepo) UpsertMapping(ctx context.Context, mapping SkillMapping) error {
	const query = `
INSERT INTO skill_mappings (id, skill, roles, created_at, updated_at)
VALUES ($1, $2, $3, $4, $4)
ON CONFLICT (skill) DO UPDATE SET
    roles = EXCLUDED.roles,
    updated_at = EXCLUDED.updated_at`

	entries, err := json.Marshal(mapping.Roles)
	if err != nil {
		return fmt.Errorf("marshal mapping roles: %w", err)
	}

	now := mapping.UpdatedAt
	if now.IsZero() {
		now = time.Now().UTC()
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		mapping.ID,
		strings.ToLower(strings.TrimSpace(mapping.Skill)),
		entries,
		now,
	)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRole(row rowScanner) (Role, error) {
	var role Role
	var description sql.NullString
	var requiredJSON, relatedJSON []byte
	var averageSalary, growthRate, industry, experienceLevel sql.NullString
	err := row.Scan(
		&role.ID,
		&role.Title,
		&description,
		&requiredJSON,
		&relatedJSON,
		&averageSalary,
		&growthRate,
		&industry,
		&experienceLevel,
		&role.CreatedAt,
		&role.UpdatedAt,
	)
	if err != nil {
		return Role{}, err
	}
	role.Description = description.String
	role.AverageSalary = averageSalary.String
	role.GrowthRate = growthRate.String
	role.Industry = industry.String
	role.ExperienceLevel = experienceLevel.String
	if len(requiredJSON) > 0 {
		if err := json.Unmarshal(requiredJSON, &role.RequiredSkills); err != nil {
			return Role{}, fmt.Errorf("unmarshal required skills for %q: %w", role.Title, err)
		}
	}
	if len(relatedJSON) > 0 {
		if err := json.Unmarshal(relatedJSON, &role.RelatedSkills); err != nil {
			return Role{}, fmt.Errorf("unmarshal related skills for %q: %w", role.Title, err)
		}
	}
	return role, nil
}

func stringsOrEmpty(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

var _ Repo = (*PGRepo)(nil)
