package match

import (
	"context"
	"fmt"
	"math"
	"strings"
)

// MissingCoreSkills determines which skills are core to the given role
// cluster (required by at least coreSkillRatio of its roles) and returns the
// ones absent from the candidate's skill names. Comparison is
// case-insensitive; an empty cluster yields an empty result.
func (a *Analyzer) MissingCoreSkills(ctx context.Context, clusterRoles, candidateSkills []string) ([]string, error) {
	if len(clusterRoles) == 0 {
		return []string{}, nil
	}

	roles, err := a.Roles.ListByTitles(ctx, clusterRoles)
	if err != nil {
		return nil, fmt.Errorf("list cluster roles: %w", err)
	}
	if len(roles) == 0 {
		return []string{}, nil
	}

	type tally struct {
		display string
		count   int
	}
	counts := make(map[string]*tally)
	var order []string
	for _, role := range roles {
		for _, skill := range role.RequiredSkills {
			key := strings.ToLower(strings.TrimSpace(skill))
			if key == "" {
				continue
			}
			entry, ok := counts[key]
			if !ok {
				entry = &tally{display: skill}
				counts[key] = entry
				order = append(order, key)
			}
			entry.count++
		}
	}

	threshold := float64(len(roles)) * coreSkillRatio
	have := skillSet(candidateSkills)

	missing := []string{}
	for _, key := range order {
		entry := counts[key]
		if float64(entry.count) >= threshold && !have[key] {
			missing = append(missing, entry.display)
		}
	}
	return missing, nil
}

// GapAnalyzer compares a candidate's skills to one named target role.
type GapAnalyzer struct {
	Roles RoleStore
}

// Analyze looks up the role by exact title (ErrNotFound when absent) and
// computes the missing required/related skills and the match percentage.
// A role with no required skills matches at 100.
func (g *GapAnalyzer) Analyze(ctx context.Context, roleTitle string, candidateSkills []string) (GapAnalysis, error) {
	role, err := g.Roles.GetByTitle(ctx, roleTitle)
	if err != nil {
		return GapAnalysis{}, fmt.Errorf("role %q: %w", roleTitle, err)
	}

	have := skillSet(candidateSkills)
	missingRequired := missingFrom(role.RequiredSkills, have)
	missingRelated := missingFrom(role.RelatedSkills, have)

	pct := maxScore
	if len(role.RequiredSkills) > 0 {
		pct = int(math.Round((1 - float64(len(missingRequired))/float64(len(role.RequiredSkills))) * 100))
		if pct < 0 {
			pct = 0
		}
		if pct > maxScore {
			pct = maxScore
		}
	}

	return GapAnalysis{
		Role:                  role,
		MissingRequiredSkills: missingRequired,
		MissingRelatedSkills:  missingRelated,
		MatchPercentage:       pct,
	}, nil
}

func skillSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		trimmed := strings.ToLower(strings.TrimSpace(name))
		if trimmed != "" {
			set[trimmed] = true
		}
	}
	return set
}

func missingFrom(required []string, have map[string]bool) []string {
	missing := []string{}
	for _, skill := range required {
		if !have[strings.ToLower(strings.TrimSpace(skill))] {
			missing = append(missing, skill)
		}
	}
	return missing
}
