package match

// Job is the minimal posting view the scorer reads. The jobs package owns
// the full persisted record and converts into this.
type Job struct {
	Title          string
	Company        string
	Location       string
	Description    string
	Requirements   []string
	Remote         bool
	EmploymentType string
}

// Profile is the minimal candidate view the engine reads.
type Profile struct {
	SkillNames      []string
	DesiredTitles   []string
	City            string
	State           string
	Country         string
	RemoteWork      bool
	EmploymentTypes []string
}

// Role is a role definition as consumed by clustering and gap analysis.
type Role struct {
	Title           string
	Description     string
	RequiredSkills  []string
	RelatedSkills   []string
	AverageSalary   string
	Industry        string
	ExperienceLevel string
}

// RoleAffinity links a role title to a 0-100 relevance score for a skill.
type RoleAffinity struct {
	Title     string
	Relevance float64
}

// SkillMapping is the curated skill -> roles affinity record, keyed by the
// lower-cased skill name.
type SkillMapping struct {
	Skill string
	Roles []RoleAffinity
}

// ClusterResult is the outcome of analyzing a candidate's skill set.
type ClusterResult struct {
	PrimaryCluster    []string `json:"primaryCluster"`
	SecondaryCluster  []string `json:"secondaryCluster"`
	UniqueSkills      []string `json:"uniqueSkills"`
	MissingCoreSkills []string `json:"missingCoreSkills"`
}

// Market carries the enrichment fields attached to a recommendation.
type Market struct {
	Demand        string `json:"marketDemand"`
	AverageSalary string `json:"averageSalary"`
}

// Recommendation is one ranked role suggestion.
type Recommendation struct {
	Role   Role
	Source string
	Market Market
}

// GapAnalysis reports how a candidate measures against one target role.
type GapAnalysis struct {
	Role                  Role
	MissingRequiredSkills []string
	MissingRelatedSkills  []string
	MatchPercentage       int
}
