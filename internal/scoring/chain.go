package scoring

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
)

// Result is one strategy's candidate answer before validation.
type Result struct {
	Score         float64
	Justification string
}

// Strategy is one way of producing a match score. A failed attempt returns an
// error (or a nil result); the chain moves on to the next strategy without
// surfacing the failure.
type Strategy interface {
	Name() string
	Attempt(ctx context.Context, resumeText, jobDescription string) (*Result, error)
}

// Outcome is the accepted result of a chain run.
type Outcome struct {
	Score         int    `json:"score"`
	Justification string `json:"justification"`
	Source        string `json:"source"`
}

// ErrUnavailable reports that no strategy produced an acceptable result.
// With the heuristic scorer at the end of the chain this only happens when a
// winning strategy fails the final validity gate.
var ErrUnavailable = errors.New("scoring unavailable")

// Chain tries its strategies in order and accepts the first structurally
// valid result. No retries within a strategy, no merging across strategies.
type Chain struct {
	strategies []Strategy
}

func NewChain(strategies ...Strategy) *Chain {
	return &Chain{strategies: strategies}
}

func (c *Chain) Score(ctx context.Context, resumeText, jobDescription string) (*Outcome, error) {
	for _, s := range c.strategies {
		res, err := s.Attempt(ctx, resumeText, jobDescription)
		if err != nil {
			log.Printf("scoring strategy %s yielded nothing: %v", s.Name(), err)
			continue
		}
		if res == nil {
			continue
		}

		// Final validity gate, uniform regardless of source.
		if res.Score < 0 || res.Score > 100 || strings.TrimSpace(res.Justification) == "" {
			return nil, fmt.Errorf("%w: strategy %s produced score %.1f", ErrUnavailable, s.Name(), res.Score)
		}

		return &Outcome{
			Score:         int(math.Round(res.Score)),
			Justification: fmt.Sprintf("%s [source: %s]", res.Justification, s.Name()),
			Source:        s.Name(),
		}, nil
	}
	return nil, ErrUnavailable
}
