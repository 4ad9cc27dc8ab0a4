package scoring

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeuristicScoreIsDeterministic(t *testing.T) {
	h := NewHeuristicScorer()
	resume := "John Doe\njohn@doe.com\nSkills: Java, SQL"
	job := "Requires Java and SQL, 3 years experience"

	score1, just1 := h.Score(resume, job)
	score2, just2 := h.Score(resume, job)

	assert.Equal(t, score1, score2)
	assert.Equal(t, just1, just2)
}

func TestHeuristicScoreKnownInput(t *testing.T) {
	h := NewHeuristicScorer()
	resume := "John Doe\njohn@doe.com\nSkills: Java, SQL"
	job := "Requires Java and SQL, 3 years experience"

	score, justification := h.Score(resume, job)

	// Full keyword coverage (2/2) at weight 0.5, short of the 3-year
	// requirement at weight 0.2: 50 + 5.
	assert.Equal(t, 55, score)
	assert.Contains(t, justification, "Programming Languages 2/2 (java, sql)")
	assert.Contains(t, justification, "below the 3-year requirement")
	assert.Contains(t, justification, "Good match.")
}

func TestHeuristicScoreAlwaysInRange(t *testing.T) {
	h := NewHeuristicScorer()
	pairs := [][2]string{
		{"", ""},
		{"no overlap at all", "also nothing relevant"},
		{strings.Repeat("go python java aws docker kubernetes leadership ", 50),
			strings.Repeat("go python java aws docker kubernetes leadership senior 10 years experience ", 50)},
		{"Skills: everything", "We need everything"},
	}
	for i, p := range pairs {
		score, justification := h.Score(p[0], p[1])
		assert.GreaterOrEqual(t, score, 0, "pair %d", i)
		assert.LessOrEqual(t, score, 100, "pair %d", i)
		assert.NotEmpty(t, justification, "pair %d", i)
	}
}

func TestHeuristicZeroOverlapScoresZero(t *testing.T) {
	h := NewHeuristicScorer()

	score, justification := h.Score("gardening and pottery", "knitting specialist wanted")

	assert.Equal(t, 0, score)
	assert.Contains(t, justification, "Limited alignment.")
}

func TestHeuristicExperienceRequirementMet(t *testing.T) {
	h := NewHeuristicScorer()
	resume := "Senior engineer with 7 years of experience\nSkills: Go, Docker"
	job := "Senior role requiring Go and Docker, 5 years experience"

	_, justification := h.Score(resume, job)

	assert.Contains(t, justification, "meets the 5-year requirement (7 years found)")
	assert.Contains(t, justification, "seniority signals: senior")
}

func TestHeuristicPicksLargestYears(t *testing.T) {
	assert.Equal(t, 12, yearsOfExperience("2 years experience in x, 12 years of experience overall"))
	assert.Equal(t, 0, yearsOfExperience("plenty of experience"))
}

func TestHeuristicQualificationBonuses(t *testing.T) {
	h := NewHeuristicScorer()
	resume := "Jane\nBachelor of Science, AWS Certified\nSkills: aws"
	job := "aws engineer"

	_, justification := h.Score(resume, job)

	assert.Contains(t, justification, "education keywords present")
	assert.Contains(t, justification, "certification keywords present")
}

func TestHeuristicBreadthBonus(t *testing.T) {
	h := NewHeuristicScorer()
	resume := "Skills: python, react, postgres, docker, machine learning"
	job := "Looking for python, react, postgres, docker and machine learning"

	_, justification := h.Score(resume, job)

	assert.Contains(t, justification, fmt.Sprintf("broad coverage across %d skill categories", 5))
}

func TestScoreBandCutoffs(t *testing.T) {
	cases := map[int]string{
		100: "Outstanding match.",
		85:  "Outstanding match.",
		84:  "Strong match.",
		70:  "Strong match.",
		69:  "Good match.",
		55:  "Good match.",
		54:  "Moderate match.",
		40:  "Moderate match.",
		39:  "Partial match.",
		25:  "Partial match.",
		24:  "Limited alignment.",
		0:   "Limited alignment.",
	}
	for score, want := range cases {
		require.Equal(t, want, scoreBand(score), "score %d", score)
	}
}
