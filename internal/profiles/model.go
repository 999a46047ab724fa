package profiles

import (
	"time"

	"jobsearch-backend/internal/match"
)

// Location is where the candidate is based and wants to work.
type Location struct {
	City               string   `json:"city"`
	State              string   `json:"state"`
	Country            string   `json:"country"`
	PreferredLocations []string `json:"preferredLocations"`
}

// Basic holds identity and contact details.
type Basic struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Location Location `json:"location"`
}

// SalaryExpectations is the candidate's expected range.
type SalaryExpectations struct {
	Minimum  int    `json:"minimum"`
	Target   int    `json:"target"`
	Currency string `json:"currency"`
}

// Preferences captures how the candidate wants to work.
type Preferences struct {
	RemoteWork         bool               `json:"remoteWork"`
	EmploymentTypes    []string           `json:"employmentTypes"`
	SalaryExpectations SalaryExpectations `json:"salaryExpectations"`
	WorkEnvironments   []string           `json:"workEnvironments"`
}

// Professional summarizes the candidate's career.
type Professional struct {
	CurrentTitle    string   `json:"currentTitle"`
	DesiredTitles   []string `json:"desiredTitles"`
	TotalExperience float64  `json:"totalExperience"`
	Industries      []string `json:"industries"`
}

// Skill is one candidate skill with proficiency and tenure.
type Skill struct {
	Name              string  `json:"name"`
	Level             string  `json:"level"`
	YearsOfExperience float64 `json:"yearsOfExperience"`
}

// Education is one degree or program.
type Education struct {
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	FieldOfStudy   string `json:"fieldOfStudy"`
	GraduationYear int    `json:"graduationYear"`
}

// Profile is a candidate's stored profile, one per user.
type Profile struct {
	ID           string       `json:"id"`
	UserID       string       `json:"userId"`
	Basic        Basic        `json:"basic"`
	Preferences  Preferences  `json:"preferences"`
	Professional Professional `json:"professional"`
	Skills       []Skill      `json:"skills"`
	Education    []Education  `json:"education"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// SkillNames returns the names of the candidate's skills, in order.
func (p Profile) SkillNames() []string {
	names := make([]string, 0, len(p.Skills))
	for _, skill := range p.Skills {
		names = append(names, skill.Name)
	}
	return names
}

// MatchProfile converts the stored profile into the view the match engine
// consumes.
func (p Profile) MatchProfile() match.Profile {
	return match.Profile{
		SkillNames:      p.SkillNames(),
		DesiredTitles:   p.Professional.DesiredTitles,
		City:            p.Basic.Location.City,
		State:           p.Basic.Location.State,
		Country:         p.Basic.Location.Country,
		RemoteWork:      p.Preferences.RemoteWork,
		EmploymentTypes: p.Preferences.EmploymentTypes,
	}
}
