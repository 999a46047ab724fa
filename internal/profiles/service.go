package profiles

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobsearch-backend/internal/extract"
	"jobsearch-backend/internal/match"
)

var ErrInvalidInput = errors.New("invalid input")

// resumeCandidateLimit caps how many token/bigram candidates from an
// imported resume are checked against the mapping corpus.
const resumeCandidateLimit = 512

// Service contains business logic for candidate profiles.
type Service struct {
	Repo Repo
	// Corpus is consulted to recognize known skills in imported resumes.
	Corpus match.MappingStore
}

// Save validates and stores the profile for a user, preserving the original
// creation time on update.
func (s *Service) Save(ctx context.Context, userID string, profile Profile) (Profile, error) {
	if strings.TrimSpace(userID) == "" {
		return Profile{}, ErrInvalidInput
	}
	if strings.TrimSpace(profile.Basic.Name) == "" || strings.TrimSpace(profile.Basic.Email) == "" {
		return Profile{}, ErrInvalidInput
	}
	for _, skill := range profile.Skills {
		if strings.TrimSpace(skill.Name) == "" {
			return Profile{}, ErrInvalidInput
		}
	}

	now := time.Now().UTC()
	profile.UserID = userID
	profile.UpdatedAt = now

	existing, err := s.Repo.GetByUser(ctx, userID)
	switch {
	case err == nil:
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	case errors.Is(err, ErrNotFound):
		profile.ID = uuid.NewString()
		profile.CreatedAt = now
	default:
		return Profile{}, err
	}

	if err := s.Repo.Upsert(ctx, profile); err != nil {
		return Profile{}, err
	}
	return profile, nil
}

// Get returns the stored profile for a user.
func (s *Service) Get(ctx context.Context, userID string) (Profile, error) {
	if strings.TrimSpace(userID) == "" {
		return Profile{}, ErrInvalidInput
	}
	return s.Repo.GetByUser(ctx, userID)
}

// MatchProfileForUser returns the stored profile converted into the view
// the match engine consumes. Callers that accept inline profiles use this
// as the fallback for authenticated users.
func (s *Service) MatchProfileForUser(ctx context.Context, userID string) (match.Profile, error) {
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return match.Profile{}, err
	}
	return profile.MatchProfile(), nil
}

// Delete removes the stored profile for a user.
func (s *Service) Delete(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrInvalidInput
	}
	return s.Repo.DeleteByUser(ctx, userID)
}

// ResumeImport is the outcome of scanning an uploaded resume.
type ResumeImport struct {
	CharCount      int      `json:"charCount"`
	DetectedSkills []string `json:"detectedSkills"`
	NewSkills      []string `json:"newSkills"`
}

// ImportResume extracts text from an uploaded resume and reports which
// skills from the mapping corpus appear in it, splitting out the ones not
// yet on the stored profile. The resume itself is not persisted.
func (s *Service) ImportResume(ctx context.Context, userID string, data []byte, mimeType, fileName string) (ResumeImport, error) {
	if len(data) == 0 {
		return ResumeImport{}, ErrInvalidInput
	}

	text, err := extract.TextFromBytes(ctx, data, mimeType, fileName)
	if err != nil {
		return ResumeImport{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	detected, err := s.detectSkills(ctx, text)
	if err != nil {
		return ResumeImport{}, err
	}

	known := make(map[string]bool)
	if profile, err := s.Repo.GetByUser(ctx, userID); err == nil {
		for _, name := range match.NormalizeSkillNames(profile.SkillNames()) {
			known[name] = true
		}
	} else if !errors.Is(err, ErrNotFound) {
		return ResumeImport{}, err
	}

	result := ResumeImport{
		CharCount:      len(text),
		DetectedSkills: detected,
		NewSkills:      []string{},
	}
	for _, skill := range detected {
		if !known[skill] {
			result.NewSkills = append(result.NewSkills, skill)
		}
	}
	return result, nil
}

// detectSkills checks resume tokens and adjacent bigrams against the
// mapping corpus and returns the skills found, in encounter order.
func (s *Service) detectSkills(ctx context.Context, text string) ([]string, error) {
	tokens := match.Tokenize(text)
	seen := make(map[string]bool)
	candidates := make([]string, 0, resumeCandidateLimit)
	add := func(candidate string) {
		if len(candidates) >= resumeCandidateLimit || seen[candidate] {
			return
		}
		seen[candidate] = true
		candidates = append(candidates, candidate)
	}
	for i, token := range tokens {
		add(token)
		if i+1 < len(tokens) {
			add(token + " " + tokens[i+1])
		}
	}

	if len(candidates) == 0 {
		return []string{}, nil
	}
	mappings, err := s.Corpus.ListBySkills(ctx, candidates)
	if err != nil {
		return nil, err
	}
	detected := make([]string, 0, len(mappings))
	for _, mapping := range mappings {
		detected = append(detected, mapping.Skill)
	}
	return detected, nil
}
