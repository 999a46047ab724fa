package roles

import "time"

// Role is a curated role definition. Title is the natural key.
type Role struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	RequiredSkills  []string  `json:"requiredSkills"`
	RelatedSkills   []string  `json:"relatedSkills"`
	AverageSalary   string    `json:"averageSalary"`
	GrowthRate      string    `json:"growthRate"`
	Industry        string    `json:"industry"`
	ExperienceLevel string    `json:"experienceLevel"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// RoleAffinity is one entry of a skill mapping: a role title and the 0-100
// relevance of the skill to that role.
type RoleAffinity struct {
	Title          string  `json:"title"`
	RelevanceScore float64 `json:"relevanceScore"`
}

// SkillMapping records which roles a skill is associated with. The skill
// name is stored lower-cased and is unique.
type SkillMapping struct {
	ID        string         `json:"id"`
	Skill     string         `json:"skill"`
	Roles     []RoleAffinity `json:"roles"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
