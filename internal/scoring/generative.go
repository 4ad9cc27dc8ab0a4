package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

type contentGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GenerativeScorer asks a chat-completion model to evaluate the resume
// against the job description and parses the JSON object embedded in its
// free-text reply.
type GenerativeScorer struct {
	svc contentGenerator
}

func NewGenerativeScorer(svc contentGenerator) *GenerativeScorer {
	return &GenerativeScorer{svc: svc}
}

func (g *GenerativeScorer) Name() string { return "generative" }

func (g *GenerativeScorer) Attempt(ctx context.Context, resumeText, jobDescription string) (*Result, error) {
	reply, err := g.svc.Generate(ctx, buildScoringPrompt(resumeText, jobDescription))
	if err != nil {
		return nil, err
	}

	obj := firstJSONObject(reply)
	if obj == "" {
		return nil, fmt.Errorf("no JSON object in model reply")
	}

	var parsed struct {
		Score         *float64 `json:"score"`
		Justification *string  `json:"justification"`
	}
	if err := json.Unmarshal([]byte(obj), &parsed); err != nil {
		return nil, fmt.Errorf("parse model reply: %w", err)
	}
	if parsed.Score == nil || parsed.Justification == nil {
		return nil, fmt.Errorf("model reply missing score or justification")
	}

	return &Result{Score: *parsed.Score, Justification: *parsed.Justification}, nil
}

func buildScoringPrompt(resumeText, jobDescription string) string {
	var sb strings.Builder

	sb.WriteString("You are an experienced technical recruiter evaluating how well a candidate's resume matches a job description.\n\n")

	sb.WriteString("Scoring bands:\n")
	sb.WriteString("- 85-100: Outstanding match, candidate covers nearly all requirements\n")
	sb.WriteString("- 70-84: Strong match, core requirements covered with minor gaps\n")
	sb.WriteString("- 55-69: Good match, most requirements covered\n")
	sb.WriteString("- 40-54: Moderate match, notable gaps in requirements\n")
	sb.WriteString("- 25-39: Partial match, only some requirements covered\n")
	sb.WriteString("- 0-24: Limited alignment with the role\n\n")

	sb.WriteString("Evaluation steps:\n")
	sb.WriteString("1. List the skills and qualifications the job description requires.\n")
	sb.WriteString("2. Check the resume for evidence of each requirement.\n")
	sb.WriteString("3. Weigh hard requirements over nice-to-haves.\n")
	sb.WriteString("4. Consider years of experience and seniority.\n")
	sb.WriteString("5. Pick the band that fits, then a score within it.\n\n")

	sb.WriteString("## RESUME\n")
	sb.WriteString(resumeText)
	sb.WriteString("\n\n## JOB DESCRIPTION\n")
	sb.WriteString(jobDescription)
	sb.WriteString("\n\n")

	sb.WriteString("Respond with a JSON object in this exact format:\n")
	sb.WriteString(`{"score": <number 0-100>, "justification": "<2-4 sentences explaining the score>"}` + "\n")

	return sb.String()
}

// firstJSONObject returns the first brace-matched top-level JSON object in s,
// or "" when none is found. Braces inside JSON strings are ignored.
func firstJSONObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start == -1 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
