package match

import (
	"math"
	"strings"
)

const (
	// minTermLength drops short tokens ("to", "of") from similarity.
	minTermLength = 3
	// preferenceBonus is added once per satisfied preference rule.
	preferenceBonus = 10
	maxScore        = 100
)

// Score computes a 0-100 fit score for a job against a candidate profile.
// The similarity base comes from an isolated two-document TF-IDF corpus;
// location, remote and employment-type preferences add flat bonuses. Given
// identical inputs the result is identical.
func Score(job Job, profile Profile) int {
	jobDoc := joinDoc(append([]string{job.Title, job.Company, job.Description}, job.Requirements...))
	profileDoc := joinDoc(append(append([]string{}, profile.DesiredTitles...), profile.SkillNames...))

	corpus := NewCorpus(jobDoc, profileDoc)

	var total float64
	var terms int
	for _, term := range Tokenize(profileDoc) {
		if len(term) < minTermLength {
			continue
		}
		jobWeight := corpus.Weight(term, 0)
		if jobWeight <= 0 {
			continue
		}
		total += jobWeight * corpus.Weight(term, 1)
		terms++
	}

	score := 0
	if terms > 0 {
		score = int(math.Round(total / float64(terms) * 100))
		if score > maxScore {
			score = maxScore
		}
	}

	if profile.RemoteWork && job.Remote {
		score += preferenceBonus
	} else if loc := firstNonEmpty(profile.City, profile.State, profile.Country); loc != "" && job.Location != "" &&
		strings.Contains(strings.ToLower(job.Location), strings.ToLower(loc)) {
		score += preferenceBonus
	}

	if job.EmploymentType != "" && containsString(profile.EmploymentTypes, job.EmploymentType) {
		score += preferenceBonus
	}

	if score > maxScore {
		score = maxScore
	}
	return score
}

func joinDoc(parts []string) string {
	kept := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func containsString(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
