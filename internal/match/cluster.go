package match

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Cluster membership is relative to the top-ranked role: a role joins the
// cluster when its hit count or its average relevance clears the respective
// ratio of the leader's. The combinator is an inclusive or.
const (
	clusterCountRatio     = 0.7
	clusterRelevanceRatio = 0.8
	// coreSkillRatio marks a skill as core when it is required by at least
	// this share of the cluster's roles.
	coreSkillRatio = 0.7
	// uniqueSkillLimit caps the distinctive-skills list.
	uniqueSkillLimit = 5
)

// Analyzer groups the roles associated with a candidate's skills into a
// primary and a secondary cluster and surfaces the candidate's most
// distinctive skills.
type Analyzer struct {
	Mappings MappingStore
	Roles    RoleStore
}

type rankedRole struct {
	title        string
	count        int
	avgRelevance float64
}

// Analyze runs the full skill analysis. An empty skill set degrades to an
// empty result, never an error.
func (a *Analyzer) Analyze(ctx context.Context, skillNames []string) (ClusterResult, error) {
	result := ClusterResult{
		PrimaryCluster:    []string{},
		SecondaryCluster:  []string{},
		UniqueSkills:      []string{},
		MissingCoreSkills: []string{},
	}

	names := NormalizeSkillNames(skillNames)
	if len(names) == 0 {
		return result, nil
	}

	mappings, err := a.Mappings.ListBySkills(ctx, names)
	if err != nil {
		return ClusterResult{}, fmt.Errorf("list skill mappings: %w", err)
	}

	ranked := rankRoles(mappings)
	primary := filterByRelativeThreshold(ranked)
	secondary := filterByRelativeThreshold(subtractRanked(ranked, primary))

	result.PrimaryCluster = titlesOf(primary)
	result.SecondaryCluster = titlesOf(secondary)
	result.UniqueSkills = rankUniqueSkills(mappings)

	missing, err := a.MissingCoreSkills(ctx, result.PrimaryCluster, names)
	if err != nil {
		return ClusterResult{}, err
	}
	result.MissingCoreSkills = missing

	return result, nil
}

// rankRoles aggregates per-role hit counts and relevance sums across the
// mappings and orders them by count, then average relevance. A final title
// key keeps the order stable across map iteration.
func rankRoles(mappings []SkillMapping) []rankedRole {
	type acc struct {
		count          int
		totalRelevance float64
	}
	byTitle := make(map[string]*acc)
	for _, mapping := range mappings {
		for _, role := range mapping.Roles {
			entry, ok := byTitle[role.Title]
			if !ok {
				entry = &acc{}
				byTitle[role.Title] = entry
			}
			entry.count++
			entry.totalRelevance += role.Relevance
		}
	}

	ranked := make([]rankedRole, 0, len(byTitle))
	for title, entry := range byTitle {
		ranked = append(ranked, rankedRole{
			title:        title,
			count:        entry.count,
			avgRelevance: entry.totalRelevance / float64(entry.count),
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.count != b.count {
			return a.count > b.count
		}
		if a.avgRelevance != b.avgRelevance {
			return a.avgRelevance > b.avgRelevance
		}
		return strings.ToLower(a.title) < strings.ToLower(b.title)
	})
	return ranked
}

func filterByRelativeThreshold(ranked []rankedRole) []rankedRole {
	if len(ranked) == 0 {
		return nil
	}
	top := ranked[0]
	out := make([]rankedRole, 0, len(ranked))
	for _, role := range ranked {
		if float64(role.count) >= float64(top.count)*clusterCountRatio ||
			role.avgRelevance >= top.avgRelevance*clusterRelevanceRatio {
			out = append(out, role)
		}
	}
	return out
}

func subtractRanked(ranked, remove []rankedRole) []rankedRole {
	removed := make(map[string]bool, len(remove))
	for _, role := range remove {
		removed[role.title] = true
	}
	out := make([]rankedRole, 0, len(ranked))
	for _, role := range ranked {
		if !removed[role.title] {
			out = append(out, role)
		}
	}
	return out
}

// rankUniqueSkills scores each mapped skill by average relevance divided by
// half its role count, favoring skills that are highly relevant to few
// roles, and returns the top names.
func rankUniqueSkills(mappings []SkillMapping) []string {
	type scored struct {
		skill string
		score float64
	}
	ranked := make([]scored, 0, len(mappings))
	for _, mapping := range mappings {
		if len(mapping.Roles) == 0 {
			continue
		}
		var total float64
		for _, role := range mapping.Roles {
			total += role.Relevance
		}
		avg := total / float64(len(mapping.Roles))
		ranked = append(ranked, scored{
			skill: mapping.Skill,
			score: avg / (float64(len(mapping.Roles)) * 0.5),
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].skill < ranked[j].skill
	})

	limit := uniqueSkillLimit
	if len(ranked) < limit {
		limit = len(ranked)
	}
	out := make([]string, 0, limit)
	for _, entry := range ranked[:limit] {
		out = append(out, entry.skill)
	}
	return out
}

func titlesOf(ranked []rankedRole) []string {
	out := make([]string, 0, len(ranked))
	for _, role := range ranked {
		out = append(out, role.title)
	}
	return out
}

// NormalizeSkillNames lower-cases and trims skill names, dropping empties.
func NormalizeSkillNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		trimmed := strings.ToLower(strings.TrimSpace(name))
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
