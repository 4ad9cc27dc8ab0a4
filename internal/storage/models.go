package storage

import (
	"context"
	"errors"
	"time"
)

// MaxSkills bounds the skills list on a stored resume.
const MaxSkills = 50

// ErrNotFound is returned when a resume id does not exist in the store.
var ErrNotFound = errors.New("resume not found")

// Resume represents one uploaded résumé and its derived/scored data.
// CandidateName, Email and Phone are best-effort extraction results and
// may be empty; MatchScore and Justification are set together by a
// scoring operation or not at all.
type Resume struct {
	ID            string    `json:"id"`
	FileName      string    `json:"fileName"`
	RawText       string    `json:"-"`
	CandidateName string    `json:"candidateName,omitempty"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Skills        []string  `json:"skills"`
	MatchScore    *int      `json:"matchScore,omitempty"`
	Justification *string   `json:"justification,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Store persists resumes. Implementations must be atomic at the
// single-record granularity.
type Store interface {
	Create(ctx context.Context, r *Resume) error
	Get(ctx context.Context, id string) (*Resume, error)
	// List returns all resumes, highest score first, then newest first.
	List(ctx context.Context) ([]*Resume, error)
	// ListByMinScore returns resumes with a match score >= minScore,
	// in the same order as List.
	ListByMinScore(ctx context.Context, minScore int) ([]*Resume, error)
	UpdateScore(ctx context.Context, id string, score int, justification string) error
	Delete(ctx context.Context, id string) error
}
