package cv

import (
	"regexp"
	"strings"

	"talenttrace/internal/storage"
)

// Fields is the best-effort structured guess extracted from resume text.
// An empty string (or empty Skills) means "not found", never an error.
type Fields struct {
	Name   string
	Email  string
	Phone  string
	Skills []string
}

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	// Intentionally loose: also matches bare 7-digit sequences that are not
	// phone numbers. Tightening it loses legitimate international formats.
	phoneRe = regexp.MustCompile(`(?:\+\d{1,3}[\s.-]?)?(?:\(\d{3}\)|\d{3})?[\s.-]?\d{3}[\s.-]?\d{4}`)

	nameLabelRe  = regexp.MustCompile(`(?im)^\s*name\s*:\s*(.+)$`)
	fieldLabelRe = regexp.MustCompile(`(?i)^(e-?mail|phone)\b`)
	sectionRe    = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9 /&-]*:`)
)

const maxNameLen = 80

// ExtractFields runs all four extraction heuristics over the same text.
// The extractors are independent; none depends on another's result.
func ExtractFields(text string) Fields {
	return Fields{
		Name:   extractName(text),
		Email:  emailRe.FindString(text),
		Phone:  strings.TrimSpace(phoneRe.FindString(text)),
		Skills: extractSkills(text),
	}
}

// extractName takes the first non-blank line as the candidate name unless it
// is overly long or looks like a labeled field (resumes overwhelmingly open
// with the name). Falls back to a "Name: ..." line anywhere in the text.
func extractName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) <= maxNameLen && !fieldLabelRe.MatchString(line) {
			return line
		}
		break
	}
	if m := nameLabelRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// extractSkills captures the section introduced by a "Skills:" line up to a
// blank line, the next "Label:" line, or end of text. Tokens are split on
// commas and line breaks, order preserved, capped at storage.MaxSkills.
func extractSkills(text string) []string {
	lines := strings.Split(text, "\n")
	start := -1
	var remainder string
	for i, line := range lines {
		lower := strings.ToLower(line)
		idx := strings.Index(lower, "skills")
		if idx == -1 {
			continue
		}
		colon := strings.Index(line[idx:], ":")
		if colon == -1 {
			continue
		}
		start = i
		remainder = line[idx+colon+1:]
		break
	}
	if start == -1 {
		return nil
	}

	block := []string{remainder}
	for _, line := range lines[start+1:] {
		if strings.TrimSpace(line) == "" || sectionRe.MatchString(line) {
			break
		}
		block = append(block, line)
	}

	skills := []string{}
	for _, line := range block {
		for _, token := range strings.Split(line, ",") {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}
			skills = append(skills, token)
			if len(skills) == storage.MaxSkills {
				return skills
			}
		}
	}
	if len(skills) == 0 {
		return nil
	}
	return skills
}
