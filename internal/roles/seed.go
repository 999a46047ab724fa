package roles

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// DefaultRoles returns the built-in role catalog used to seed empty stores.
func DefaultRoles() []Role {
	return []Role{
		{
			Title:           "Software Developer",
			Description:     "Develops software applications using programming languages and frameworks.",
			RequiredSkills:  []string{"JavaScript", "HTML", "CSS", "Git", "Problem Solving"},
			RelatedSkills:   []string{"React", "Node.js", "Python", "SQL", "TypeScript"},
			AverageSalary:   "$80,000 - $120,000",
			GrowthRate:      "22% (Much faster than average)",
			Industry:        "Technology",
			ExperienceLevel: "Entry to Mid-Level",
		},
		{
			Title:           "Data Scientist",
			Description:     "Analyzes and interprets complex data to help organizations make better decisions.",
			RequiredSkills:  []string{"Python", "Statistics", "Machine Learning", "Data Analysis", "SQL"},
			RelatedSkills:   []string{"R", "TensorFlow", "PyTorch", "Data Visualization", "Big Data"},
			AverageSalary:   "$100,000 - $140,000",
			GrowthRate:      "31% (Much faster than average)",
			Industry:        "Technology",
			ExperienceLevel: "Mid to Senior Level",
		},
		{
			Title:           "UX Designer",
			Description:     "Designs user experiences for digital products and services.",
			RequiredSkills:  []string{"User Research", "Wireframing", "Prototyping", "UI Design", "Usability Testing"},
			RelatedSkills:   []string{"Figma", "Adobe XD", "Sketch", "HTML", "CSS"},
			AverageSalary:   "$75,000 - $110,000",
			GrowthRate:      "13% (Faster than average)",
			Industry:        "Technology",
			ExperienceLevel: "Entry to Mid-Level",
		},
		{
			Title:           "Product Manager",
			Description:     "Oversees the development and marketing of a product or product line.",
			RequiredSkills:  []string{"Product Strategy", "Market Research", "User Stories", "Roadmapping", "Stakeholder Management"},
			RelatedSkills:   []string{"Agile Methodologies", "Data Analysis", "UX Design", "Technical Knowledge", "Communication"},
			AverageSalary:   "$90,000 - $130,000",
			GrowthRate:      "10% (Faster than average)",
			Industry:        "Technology",
			ExperienceLevel: "Mid to Senior Level",
		},
		{
			Title:           "DevOps Engineer",
			Description:     "Combines software development and IT operations to shorten the development lifecycle.",
			RequiredSkills:  []string{"Linux", "Scripting", "CI/CD", "Cloud Platforms", "Containerization"},
			RelatedSkills:   []string{"Docker", "Kubernetes", "AWS", "Azure", "Terraform"},
			AverageSalary:   "$95,000 - $135,000",
			GrowthRate:      "22% (Much faster than average)",
			Industry:        "Technology",
			ExperienceLevel: "Mid to Senior Level",
		},
	}
}

// DefaultMappings returns the built-in skill-to-role affinity corpus.
func DefaultMappings() []SkillMapping {
	return []SkillMapping{
		{
			Skill: "javascript",
			Roles: []RoleAffinity{
				{Title: "Software Developer", RelevanceScore: 95},
				{Title: "Frontend Developer", RelevanceScore: 100},
				{Title: "Full Stack Developer", RelevanceScore: 90},
				{Title: "Web Developer", RelevanceScore: 95},
			},
		},
		{
			Skill: "python",
			Roles: []RoleAffinity{
				{Title: "Data Scientist", RelevanceScore: 95},
				{Title: "Machine Learning Engineer", RelevanceScore: 90},
				{Title: "Software Developer", RelevanceScore: 70},
				{Title: "Backend Developer", RelevanceScore: 80},
			},
		},
		{
			Skill: "user research",
			Roles: []RoleAffinity{
				{Title: "UX Designer", RelevanceScore: 95},
				{Title: "UX Researcher", RelevanceScore: 100},
				{Title: "Product Manager", RelevanceScore: 75},
			},
		},
		{
			Skill: "product strategy",
			Roles: []RoleAffinity{
				{Title: "Product Manager", RelevanceScore: 100},
				{Title: "Product Owner", RelevanceScore: 90},
				{Title: "Business Analyst", RelevanceScore: 70},
			},
		},
		{
			Skill: "linux",
			Roles: []RoleAffinity{
				{Title: "DevOps Engineer", RelevanceScore: 95},
				{Title: "System Administrator", RelevanceScore: 90},
				{Title: "Cloud Engineer", RelevanceScore: 85},
			},
		},
	}
}

// Seed loads the default catalog into the repo. Used for memory-backed runs;
// Postgres deployments get the same data from the seed migration.
func Seed(ctx context.Context, repo Repo) error {
	for _, role := range DefaultRoles() {
		role.ID = uuid.NewString()
		if err := repo.UpsertRole(ctx, role); err != nil {
			return fmt.Errorf("seed role %q: %w", role.Title, err)
		}
	}
	for _, mapping := range DefaultMappings() {
		mapping.ID = uuid.NewString()
		if err := repo.UpsertMapping(ctx, mapping); err != nil {
			return fmt.Errorf("seed mapping %q: %w", mapping.Skill, err)
		}
	}
	return nil
}
