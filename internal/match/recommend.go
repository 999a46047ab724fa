package match

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Recommendation sources, ranked by weight.
const (
	SourcePrimary   = "primary"
	SourceSecondary = "secondary"
	SourceUnique    = "unique"

	// uniqueRelevanceFloor is the minimum affinity for a role to be reached
	// through a distinctive skill.
	uniqueRelevanceFloor = 80
)

func sourceWeight(source string) int {
	switch source {
	case SourcePrimary:
		return 3
	case SourceUnique:
		return 2
	case SourceSecondary:
		return 1
	default:
		return 0
	}
}

// Recommender combines cluster analysis, role lookups and market enrichment
// into a deduplicated, priority-ordered recommendation list.
type Recommender struct {
	Analyzer *Analyzer
	Roles    RoleStore
	Mappings MappingStore
	Enricher Enricher
}

// Recommend produces ranked role recommendations for the candidate. Empty
// skill sets yield an empty list; store failures fail the whole call rather
// than returning a partial ranking.
func (r *Recommender) Recommend(ctx context.Context, profile Profile) ([]Recommendation, error) {
	analysis, err := r.Analyzer.Analyze(ctx, profile.SkillNames)
	if err != nil {
		return nil, err
	}

	// Primary and secondary cluster lookups are independent reads.
	var primary, secondary []Role
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		primary, err = r.rolesFor(gctx, analysis.PrimaryCluster)
		return err
	})
	g.Go(func() error {
		var err error
		secondary, err = r.rolesFor(gctx, analysis.SecondaryCluster)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	unique, err := r.rolesForUniqueSkills(ctx, analysis.UniqueSkills)
	if err != nil {
		return nil, err
	}

	recs := make([]Recommendation, 0, len(primary)+len(secondary)+len(unique))
	for _, role := range primary {
		recs = append(recs, Recommendation{Role: role, Source: SourcePrimary})
	}
	for _, role := range secondary {
		recs = append(recs, Recommendation{Role: role, Source: SourceSecondary})
	}
	for _, role := range unique {
		recs = append(recs, Recommendation{Role: role, Source: SourceUnique})
	}

	recs = dedupeByTitle(recs)
	sort.SliceStable(recs, func(i, j int) bool {
		return sourceWeight(recs[i].Source) > sourceWeight(recs[j].Source)
	})

	r.enrich(ctx, recs)
	return recs, nil
}

func (r *Recommender) rolesFor(ctx context.Context, titles []string) ([]Role, error) {
	if len(titles) == 0 {
		return nil, nil
	}
	return r.Roles.ListByTitles(ctx, titles)
}

// rolesForUniqueSkills resolves the roles reachable from the distinctive
// skills through high-affinity mapping entries, in encounter order.
func (r *Recommender) rolesForUniqueSkills(ctx context.Context, skills []string) ([]Role, error) {
	if len(skills) == 0 {
		return nil, nil
	}
	mappings, err := r.Mappings.ListBySkills(ctx, NormalizeSkillNames(skills))
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var titles []string
	for _, mapping := range mappings {
		for _, role := range mapping.Roles {
			if role.Relevance >= uniqueRelevanceFloor && !seen[role.Title] {
				seen[role.Title] = true
				titles = append(titles, role.Title)
			}
		}
	}
	return r.rolesFor(ctx, titles)
}

// dedupeByTitle keeps the first occurrence of each role title.
func dedupeByTitle(recs []Recommendation) []Recommendation {
	seen := make(map[string]bool, len(recs))
	out := make([]Recommendation, 0, len(recs))
	for _, rec := range recs {
		if seen[rec.Role.Title] {
			continue
		}
		seen[rec.Role.Title] = true
		out = append(out, rec)
	}
	return out
}

// enrich fills market fields per recommendation. Enrichment is best-effort:
// a failing enricher degrades to defaults and never fails the ranking.
func (r *Recommender) enrich(ctx context.Context, recs []Recommendation) {
	for i := range recs {
		market := DefaultMarket(recs[i].Role)
		if r.Enricher != nil {
			if enriched, err := r.Enricher.Enrich(ctx, recs[i].Role); err == nil {
				if enriched.Demand != "" {
					market.Demand = enriched.Demand
				}
				if enriched.AverageSalary != "" {
					market.AverageSalary = enriched.AverageSalary
				}
			}
		}
		recs[i].Market = market
	}
}

// DefaultMarket returns the placeholder market fields used when no live
// market data is available.
func DefaultMarket(role Role) Market {
	salary := role.AverageSalary
	if salary == "" {
		salary = "$80,000 - $120,000"
	}
	return Market{Demand: "High", AverageSalary: salary}
}

// StaticEnricher is the default Enricher: it serves the placeholder fields
// and never fails.
type StaticEnricher struct{}

// Enrich implements Enricher.
func (StaticEnricher) Enrich(_ context.Context, role Role) (Market, error) {
	return DefaultMarket(role), nil
}
