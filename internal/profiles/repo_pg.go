package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. The profile body is stored as a
// JSONB payload keyed by user id.
type PGRepo struct {
	DB *sql.DB
}

// Upsert inserts or replaces the profile for its user.
func (r *PGRepo) Upsert(ctx context.Context, profile Profile) error {
	const query = `
INSERT INTO profiles (id, user_id, payload, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (user_id) DO UPDATE SET
    payload = EXCLUDED.payload,
    updated_at = EXCLUDED.updated_at`

	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		profile.ID,
		profile.UserID,
		payload,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	return err
}

// GetByUser returns the profile for a user.
func (r *PGRepo) GetByUser(ctx context.Context, userID string) (Profile, error) {
	const query = `
SELECT payload, created_at, updated_at
FROM profiles
WHERE user_id = $1
LIMIT 1`

	var payload []byte
	var profile Profile
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(&payload, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}

	createdAt, updatedAt := profile.CreatedAt, profile.UpdatedAt
	if err := json.Unmarshal(payload, &profile); err != nil {
		return Profile{}, fmt.Errorf("unmarshal profile for user %s: %w", userID, err)
	}
	profile.CreatedAt = createdAt
	profile.UpdatedAt = updatedAt
	return profile, nil
}

// DeleteByUser removes the profile for a user.
func (r *PGRepo) DeleteByUser(ctx context.Context, userID string) error {
	const query = `DELETE FROM profiles WHERE user_id = $1`
	res, err := r.DB.ExecContext(ctx, query, userID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
