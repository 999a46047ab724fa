package jobs

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const postingColumns = `id, title, company, location, description, requirements, salary, url, source, remote, employment_type, created_at, updated_at`

// Create inserts a new posting.
func (r *PGRepo) Create(ctx context.Context, posting Posting) error {
	const query = `
INSERT INTO jobs (` + postingColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	requirements, err := json.Marshal(stringsOrEmpty(posting.Requirements))
	if err != nil {
		return fmt.Errorf("marshal requirements: %w", err)
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		posting.ID,
		posting.Title,
		posting.Company,
		posting.Location,
		posting.Description,
		requirements,
		posting.Salary,
		posting.URL,
		posting.Source,
		posting.Remote,
		posting.EmploymentType,
		posting.CreatedAt,
		posting.UpdatedAt,
	)
	return err
}

// GetByID returns a posting by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Posting, error) {
	const query = `SELECT ` + postingColumns + ` FROM jobs WHERE id = $1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

// GetByURL returns the posting with the given listing URL.
func (r *PGRepo) GetByURL(ctx context.Context, url string) (Posting, error) {
	const query = `SELECT ` + postingColumns + ` FROM jobs WHERE url = $1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, url))
}

// List returns postings matching the filter, newest first.
func (r *PGRepo) List(ctx context.Context, filter ListFilter) ([]Posting, error) {
	query := `SELECT ` + postingColumns + ` FROM jobs`

	var conds []string
	var args []any
	if industry := strings.TrimSpace(filter.Industry); industry != "" {
		args = append(args, "%"+industry+"%")
		conds = append(conds, "description ILIKE $"+strconv.Itoa(len(args)))
	}
	if location := strings.TrimSpace(filter.Location); location != "" {
		args = append(args, "%"+location+"%")
		conds = append(conds, "location ILIKE $"+strconv.Itoa(len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC, id ASC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += " LIMIT $" + strconv.Itoa(len(args))
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	postings := []Posting{}
	for rows.Next() {
		posting, err := scanPosting(rows)
		if err != nil {
			return nil, err
		}
		postings = append(postings, posting)
	}
	return postings, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PGRepo) scanOne(row *sql.Row) (Posting, error) {
	posting, err := scanPosting(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Posting{}, ErrNotFound
	}
	return posting, err
}

func scanPosting(row rowScanner) (Posting, error) {
	var posting Posting
	var location, description, salary, employmentType sql.NullString
	var requirements []byte

	err := row.Scan(
		&posting.ID,
		&posting.Title,
		&posting.Company,
		&location,
		&description,
		&requirements,
		&salary,
		&posting.URL,
		&posting.Source,
		&posting.Remote,
		&employmentType,
		&posting.CreatedAt,
		&posting.UpdatedAt,
	)
	if err != nil {
		return Posting{}, err
	}

	posting.Location = location.String
	posting.Description = description.String
	posting.Salary = salary.String
	posting.EmploymentType = employmentType.String

	if len(requirements) > 0 {
		if err := json.Unmarshal(requirements, &posting.Requirements); err != nil {
			return Posting{}, fmt.Errorf("unmarshal requirements: %w", err)
		}
	}
	if posting.Requirements == nil {
		posting.Requirements = []string{}
	}
	return posting, nil
}

func stringsOrEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

var _ Repo = (*PGRepo)(nil)
