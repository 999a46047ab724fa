package profiles

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("profile not found")

// Repo defines persistence operations for candidate profiles. Profiles are
// keyed by user id, one per user.
type Repo interface {
	Upsert(ctx context.Context, profile Profile) error
	GetByUser(ctx context.Context, userID string) (Profile, error)
	DeleteByUser(ctx context.Context, userID string) error
}
