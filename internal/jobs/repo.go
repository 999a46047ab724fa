package jobs

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a posting does not exist.
var ErrNotFound = errors.New("job not found")

// ErrInvalidInput flags request validation failures.
var ErrInvalidInput = errors.New("invalid input")

// ListFilter narrows trending queries. Industry matches against the
// description, Location against the location field, both case-insensitive
// substring matches.
type ListFilter struct {
	Industry string
	Location string
	Limit    int
}

// Repo defines persistence operations for job postings.
type Repo interface {
	Create(ctx context.Context, posting Posting) error
	GetByID(ctx context.Context, id string) (Posting, error)
	GetByURL(ctx context.Context, url string) (Posting, error)
	List(ctx context.Context, filter ListFilter) ([]Posting, error)
}
