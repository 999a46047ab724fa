package roles

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jobsearch-backend/internal/match"
	"jobsearch-backend/internal/shared/metrics"
	"jobsearch-backend/internal/shared/telemetry"
)

// ErrInvalidInput flags request validation failures.
var ErrInvalidInput = errors.New("invalid input")

// Service contains business logic for role suggestion and gap analysis.
type Service struct {
	Repo Repo

	analyzer    *match.Analyzer
	recommender *match.Recommender
	gaps        *match.GapAnalyzer
}

// NewService wires the match engine on top of the repository. The enricher
// may be nil, in which case recommendations carry default market data.
func NewService(repo Repo, enricher match.Enricher) *Service {
	store := MatchStore{Repo: repo}
	analyzer := &match.Analyzer{Mappings: store, Roles: store}
	return &Service{
		Repo:     repo,
		analyzer: analyzer,
		recommender: &match.Recommender{
			Analyzer: analyzer,
			Roles:    store,
			Mappings: store,
			Enricher: enricher,
		},
		gaps: &match.GapAnalyzer{Roles: store},
	}
}

// Suggest produces ranked role recommendations for the candidate.
func (s *Service) Suggest(ctx context.Context, profile match.Profile) ([]match.Recommendation, error) {
	if !hasSkills(profile.SkillNames) {
		return nil, fmt.Errorf("%w: user profile with skills is required", ErrInvalidInput)
	}
	recs, err := s.recommender.Recommend(ctx, profile)
	if err != nil {
		return nil, err
	}
	metrics.IncSuggestions()
	telemetry.Info("role suggestions generated", map[string]any{
		"skills": len(profile.SkillNames),
		"total":  len(recs),
	})
	return recs, nil
}

// Analyze clusters the candidate's skills and reports distinctive and
// missing core skills.
func (s *Service) Analyze(ctx context.Context, skillNames []string) (match.ClusterResult, error) {
	if !hasSkills(skillNames) {
		return match.ClusterResult{}, fmt.Errorf("%w: skills are required", ErrInvalidInput)
	}
	return s.analyzer.Analyze(ctx, skillNames)
}

// GapAnalysis compares the candidate's skills to one named target role.
func (s *Service) GapAnalysis(ctx context.Context, roleTitle string, skillNames []string) (match.GapAnalysis, error) {
	if strings.TrimSpace(roleTitle) == "" {
		return match.GapAnalysis{}, fmt.Errorf("%w: role title is required", ErrInvalidInput)
	}
	if !hasSkills(skillNames) {
		return match.GapAnalysis{}, fmt.Errorf("%w: user profile with skills is required", ErrInvalidInput)
	}
	return s.gaps.Analyze(ctx, roleTitle, skillNames)
}

// Get returns a role definition by exact title.
func (s *Service) Get(ctx context.Context, title string) (Role, error) {
	if strings.TrimSpace(title) == "" {
		return Role{}, fmt.Errorf("%w: role title is required", ErrInvalidInput)
	}
	return s.Repo.GetRoleByTitle(ctx, title)
}

// Trending lists role definitions, optionally narrowed by industry.
func (s *Service) Trending(ctx context.Context, industry string) ([]Role, error) {
	return s.Repo.ListRoles(ctx, industry)
}

func hasSkills(names []string) bool {
	for _, name := range names {
		if strings.TrimSpace(name) != "" {
			return true
		}
	}
	return false
}
