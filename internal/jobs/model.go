package jobs

import (
	"time"

	"jobsearch-backend/internal/match"
)

// Posting is a persisted job listing. URL is the natural key used to
// deduplicate listings across searches.
type Posting struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	Location       string    `json:"location"`
	Description    string    `json:"description"`
	Requirements   []string  `json:"requirements"`
	Salary         string    `json:"salary"`
	URL            string    `json:"url"`
	Source         string    `json:"source"`
	Remote         bool      `json:"remote"`
	EmploymentType string    `json:"employmentType"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// MatchJob converts the posting into the view the match engine consumes.
func (p Posting) MatchJob() match.Job {
	return match.Job{
		Title:          p.Title,
		Company:        p.Company,
		Location:       p.Location,
		Description:    p.Description,
		Requirements:   p.Requirements,
		Remote:         p.Remote,
		EmploymentType: p.EmploymentType,
	}
}

// ScoredPosting is a posting with an optional match score attached. The
// score is present only when a candidate profile was available.
type ScoredPosting struct {
	Posting
	MatchScore *int `json:"matchScore,omitempty"`
}
