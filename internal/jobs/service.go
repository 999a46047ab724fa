package jobs

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobsearch-backend/internal/match"
	"jobsearch-backend/internal/search"
	"jobsearch-backend/internal/shared/metrics"
	"jobsearch-backend/internal/shared/telemetry"
)

const trendingLimit = 10

// Service contains business logic for job search and matching.
type Service struct {
	Repo     Repo
	Provider search.Provider
}

// Search queries the external provider, persists new listings keyed by URL,
// and scores every listing against the profile when one is given. Scored
// results come back sorted by match score, best first.
func (s *Service) Search(ctx context.Context, query string, profile *match.Profile) ([]ScoredPosting, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", ErrInvalidInput)
	}

	metrics.IncSearchStarted()
	started := time.Now()

	results, err := s.Provider.SearchJobs(ctx, query)
	if err != nil {
		metrics.IncSearchFailed()
		return nil, fmt.Errorf("search jobs: %w", err)
	}

	saved := make([]Posting, 0, len(results))
	for _, result := range results {
		posting, err := s.savePosting(ctx, result)
		if err != nil {
			metrics.IncSearchFailed()
			return nil, err
		}
		saved = append(saved, posting)
	}

	scored := make([]ScoredPosting, 0, len(saved))
	for _, posting := range saved {
		sp := ScoredPosting{Posting: posting}
		if profile != nil {
			score := match.Score(posting.MatchJob(), *profile)
			sp.MatchScore = &score
		}
		scored = append(scored, sp)
	}

	if profile != nil {
		sort.SliceStable(scored, func(i, j int) bool {
			return *scored[i].MatchScore > *scored[j].MatchScore
		})
	}

	metrics.IncSearchCompleted()
	metrics.ObserveSearchDurationMs(float64(time.Since(started).Milliseconds()))
	if profile != nil {
		metrics.AddMatchScores(len(scored))
	}
	telemetry.Info("job search completed", map[string]any{
		"query":  query,
		"total":  len(scored),
		"scored": profile != nil,
	})
	return scored, nil
}

// savePosting reuses the stored listing when the URL is already known.
func (s *Service) savePosting(ctx context.Context, result search.Result) (Posting, error) {
	if result.URL != "" {
		existing, err := s.Repo.GetByURL(ctx, result.URL)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return Posting{}, err
		}
	}

	now := time.Now().UTC()
	posting := Posting{
		ID:             uuid.NewString(),
		Title:          result.Title,
		Company:        result.Company,
		Location:       result.Location,
		Description:    result.Description,
		Requirements:   stringsOrEmpty(result.Requirements),
		Salary:         result.Salary,
		URL:            result.URL,
		Source:         "perplexity",
		Remote:         result.Remote,
		EmploymentType: result.EmploymentType,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Repo.Create(ctx, posting); err != nil {
		return Posting{}, err
	}
	return posting, nil
}

// Get returns a stored posting by ID.
func (s *Service) Get(ctx context.Context, id string) (Posting, error) {
	if strings.TrimSpace(id) == "" {
		return Posting{}, fmt.Errorf("%w: job id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, id)
}

// Match scores one stored posting against a candidate profile.
func (s *Service) Match(ctx context.Context, jobID string, profile match.Profile) (Posting, int, error) {
	if strings.TrimSpace(jobID) == "" {
		return Posting{}, 0, fmt.Errorf("%w: job id is required", ErrInvalidInput)
	}
	posting, err := s.Repo.GetByID(ctx, jobID)
	if err != nil {
		return Posting{}, 0, err
	}
	return posting, match.Score(posting.MatchJob(), profile), nil
}

// Trending returns the most recently stored postings, optionally narrowed
// by industry and location.
func (s *Service) Trending(ctx context.Context, industry, location string) ([]Posting, error) {
	return s.Repo.List(ctx, ListFilter{
		Industry: industry,
		Location: location,
		Limit:    trendingLimit,
	})
}
