package jobs

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu    sync.RWMutex
	byID  map[string]Posting
	byURL map[string]string // url -> id
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:  make(map[string]Posting),
		byURL: make(map[string]string),
	}
}

// Create stores a new posting.
func (r *MemoryRepo) Create(ctx context.Context, posting Posting) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[posting.ID] = posting
	if posting.URL != "" {
		r.byURL[posting.URL] = posting.ID
	}
	return nil
}

// GetByID returns a posting by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Posting, error) {
	if err := ctx.Err(); err != nil {
		return Posting{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	posting, ok := r.byID[id]
	if !ok {
		return Posting{}, ErrNotFound
	}
	return posting, nil
}

// GetByURL returns the posting with the given listing URL.
func (r *MemoryRepo) GetByURL(ctx context.Context, url string) (Posting, error) {
	if err := ctx.Err(); err != nil {
		return Posting{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byURL[url]
	if !ok {
		return Posting{}, ErrNotFound
	}
	return r.byID[id], nil
}

// List returns postings matching the filter, newest first.
func (r *MemoryRepo) List(ctx context.Context, filter ListFilter) ([]Posting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	postings := make([]Posting, 0, len(r.byID))
	for _, p := range r.byID {
		postings = append(postings, p)
	}
	r.mu.RUnlock()

	industry := strings.ToLower(strings.TrimSpace(filter.Industry))
	location := strings.ToLower(strings.TrimSpace(filter.Location))

	out := postings[:0]
	for _, p := range postings {
		if industry != "" && !strings.Contains(strings.ToLower(p.Description), industry) {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(p.Location), location) {
			continue
		}
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})

	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	result := make([]Posting, len(out))
	copy(result, out)
	return result, nil
}

var _ Repo = (*MemoryRepo)(nil)
