package scoring

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	response   string
	err        error
	lastPrompt string
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func TestGenerativeParsesEmbeddedJSON(t *testing.T) {
	stub := &stubGenerator{response: "Here is my evaluation:\n" +
		`{"score": 72, "justification": "Covers the core stack."}` + "\nHope that helps!"}
	scorer := NewGenerativeScorer(stub)

	res, err := scorer.Attempt(context.Background(), "resume text", "job text")

	require.NoError(t, err)
	assert.Equal(t, 72.0, res.Score)
	assert.Equal(t, "Covers the core stack.", res.Justification)
	assert.Contains(t, stub.lastPrompt, "resume text")
	assert.Contains(t, stub.lastPrompt, "job text")
}

func TestGenerativeRejectsNonJSONReply(t *testing.T) {
	scorer := NewGenerativeScorer(&stubGenerator{response: "I think the candidate is fine."})

	_, err := scorer.Attempt(context.Background(), "r", "j")

	assert.Error(t, err)
}

func TestGenerativeRejectsMissingFields(t *testing.T) {
	scorer := NewGenerativeScorer(&stubGenerator{response: `{"score": 50}`})

	_, err := scorer.Attempt(context.Background(), "r", "j")

	assert.Error(t, err)
}

func TestGenerativeRejectsNonNumericScore(t *testing.T) {
	scorer := NewGenerativeScorer(&stubGenerator{response: `{"score": "high", "justification": "x"}`})

	_, err := scorer.Attempt(context.Background(), "r", "j")

	assert.Error(t, err)
}

func TestGenerativePropagatesGeneratorError(t *testing.T) {
	scorer := NewGenerativeScorer(&stubGenerator{err: errors.New("quota exceeded")})

	_, err := scorer.Attempt(context.Background(), "r", "j")

	assert.Error(t, err)
}

func TestFirstJSONObject(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`{"a": 1}`, `{"a": 1}`},
		{"prefix {\"a\": {\"b\": 2}} suffix {\"c\": 3}", `{"a": {"b": 2}}`},
		{`text with {"s": "brace } in string"} after`, `{"s": "brace } in string"}`},
		{`text with {"s": "escaped \" quote}"} after`, `{"s": "escaped \" quote}"}`},
		{"no braces here", ""},
		{"{unterminated", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, firstJSONObject(c.in), "input %q", c.in)
	}
}
