package scoring

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// HeuristicScorer is the deterministic keyword-overlap scorer. It is pure:
// identical inputs always yield the identical score and justification.
type HeuristicScorer struct {
	catalogue []SkillCategory
}

func NewHeuristicScorer() *HeuristicScorer {
	return &HeuristicScorer{catalogue: SkillCatalogue}
}

func (h *HeuristicScorer) Name() string { return "heuristic" }

// Attempt never fails; the fallback chain relies on that to terminate.
func (h *HeuristicScorer) Attempt(_ context.Context, resumeText, jobDescription string) (*Result, error) {
	score, justification := h.Score(resumeText, jobDescription)
	return &Result{Score: float64(score), Justification: justification}, nil
}

var (
	yearsRe       = regexp.MustCompile(`(\d{1,2})\s*\+?\s*(?:years?|yrs?)[^.\n]{0,30}?experience`)
	degreeFieldRe = regexp.MustCompile(`(bachelor|master|phd|mba)(?:'s)?(?:\s+degree)?\s+in\s+([a-z]+(?: [a-z]+){0,2})`)
)

// Score blends keyword overlap (0.5), experience signals (0.2) and
// qualification signals (0.1), adds the flat bonuses, clamps to [0,100]
// and rounds to an integer.
func (h *HeuristicScorer) Score(resumeText, jobDescription string) (int, string) {
	resume := strings.ToLower(resumeText)
	job := strings.ToLower(jobDescription)

	skillScore, categoriesMatched, skillDetail := h.matchSkills(resume, job)
	expScore, expDetail := matchExperience(resume, job)
	eduScore, eduDetail := matchQualifications(resume)
	bonus, bonusDetail := flatBonuses(resume, job, categoriesMatched)

	total := skillWeight*skillScore + experienceWeight*expScore + educationWeight*eduScore + bonus
	score := int(math.Round(math.Min(100, math.Max(0, total))))

	var b strings.Builder
	b.WriteString("Skill match: ")
	b.WriteString(skillDetail)
	b.WriteString(" Experience: ")
	b.WriteString(expDetail)
	b.WriteString(" Qualifications: ")
	b.WriteString(eduDetail)
	if bonusDetail != "" {
		b.WriteString(" Bonuses: ")
		b.WriteString(bonusDetail)
	}
	b.WriteString(" ")
	b.WriteString(scoreBand(score))

	return score, b.String()
}

// matchSkills averages per-category keyword coverage over the categories the
// job description actually asks for. Categories with no required keyword do
// not dilute the average.
func (h *HeuristicScorer) matchSkills(resume, job string) (score float64, categoriesMatched int, detail string) {
	var contributions []float64
	var parts []string
	for _, cat := range h.catalogue {
		var required, matched []string
		for _, kw := range cat.Keywords {
			if !strings.Contains(job, kw) {
				continue
			}
			required = append(required, kw)
			if strings.Contains(resume, kw) {
				matched = append(matched, kw)
			}
		}
		if len(required) == 0 {
			continue
		}
		contributions = append(contributions, float64(len(matched))/float64(len(required))*100)
		if len(matched) > 0 {
			categoriesMatched++
			parts = append(parts, fmt.Sprintf("%s %d/%d (%s)",
				cat.Name, len(matched), len(required), strings.Join(matched, ", ")))
		} else {
			parts = append(parts, fmt.Sprintf("%s 0/%d", cat.Name, len(required)))
		}
	}
	if len(contributions) == 0 {
		return 0, 0, "no catalogued keywords required by the job description."
	}
	var sum float64
	for _, c := range contributions {
		sum += c
	}
	return sum / float64(len(contributions)), categoriesMatched, strings.Join(parts, "; ") + "."
}

func matchExperience(resume, job string) (float64, string) {
	candYears := yearsOfExperience(resume)
	reqYears := yearsOfExperience(job)

	var score float64
	var parts []string
	switch {
	case reqYears > 0 && candYears >= reqYears:
		score += meetsYearsBonus
		parts = append(parts, fmt.Sprintf("meets the %d-year requirement (%d years found)", reqYears, candYears))
	case reqYears > 0:
		score += shortYearsBonus
		parts = append(parts, fmt.Sprintf("below the %d-year requirement (%d years found)", reqYears, candYears))
	case candYears > 0:
		score += meetsYearsBonus
		parts = append(parts, fmt.Sprintf("%d years of experience found", candYears))
	}

	var seniority []string
	for _, kw := range seniorityKeywords {
		if strings.Contains(resume, kw) && strings.Contains(job, kw) {
			score += seniorityKeywordBonus
			seniority = append(seniority, kw)
		}
	}
	if len(seniority) > 0 {
		parts = append(parts, "seniority signals: "+strings.Join(seniority, ", "))
	}

	if len(parts) == 0 {
		return 0, "no experience signal found."
	}
	return math.Min(100, score), strings.Join(parts, "; ") + "."
}

// yearsOfExperience returns the largest number preceding a "years ...
// experience" phrase, or 0 when none is present.
func yearsOfExperience(text string) int {
	best := 0
	for _, m := range yearsRe.FindAllStringSubmatch(text, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n > best {
			best = n
		}
	}
	return best
}

func matchQualifications(resume string) (float64, string) {
	var score float64
	var parts []string
	if containsAny(resume, educationKeywords) {
		score += educationBonus
		parts = append(parts, "education keywords present")
	}
	if containsAny(resume, certificationKeywords) {
		score += certificationBonus
		parts = append(parts, "certification keywords present")
	}
	if len(parts) == 0 {
		return 0, "no education or certification signal found."
	}
	return score, strings.Join(parts, "; ") + "."
}

func flatBonuses(resume, job string, categoriesMatched int) (float64, string) {
	var bonus float64
	var parts []string

	switch {
	case categoriesMatched >= wideBreadthThreshold:
		bonus += wideBreadthBonus
		parts = append(parts, fmt.Sprintf("broad coverage across %d skill categories", categoriesMatched))
	case categoriesMatched >= breadthThreshold:
		bonus += breadthBonus
		parts = append(parts, fmt.Sprintf("coverage across %d skill categories", categoriesMatched))
	}

	if m := degreeFieldRe.FindStringSubmatch(job); m != nil {
		if strings.Contains(resume, m[1]) && strings.Contains(resume, m[2]) {
			bonus += degreeFieldBonus
			parts = append(parts, fmt.Sprintf("%s in %s matched", m[1], m[2]))
		}
	}

	if containsAny(resume, directExperienceKeywords) {
		bonus += directExperienceBonus
		parts = append(parts, "direct-experience signals present")
	}

	if len(parts) == 0 {
		return 0, ""
	}
	return bonus, strings.Join(parts, "; ") + "."
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
