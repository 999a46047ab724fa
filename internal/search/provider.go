package search

import "context"

// Result is one job listing returned by an external search provider.
type Result struct {
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Location       string   `json:"location"`
	Description    string   `json:"description"`
	Requirements   []string `json:"requirements"`
	Salary         string   `json:"salary"`
	URL            string   `json:"url"`
	Remote         bool     `json:"remote"`
	EmploymentType string   `json:"employmentType"`
}

// Provider searches external sources for job listings matching a free-text
// query.
type Provider interface {
	SearchJobs(ctx context.Context, query string) ([]Result, error)
}

// StaticProvider returns a fixed result set. Used in tests and local
// development when no API key is configured.
type StaticProvider struct {
	Results []Result
	Err     error
}

func (p *StaticProvider) SearchJobs(ctx context.Context, query string) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.Err != nil {
		return nil, p.Err
	}
	out := make([]Result, len(p.Results))
	copy(out, p.Results)
	return out, nil
}

var _ Provider = (*StaticProvider)(nil)
