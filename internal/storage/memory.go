package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps resumes in process memory. It backs the API when no
// DATABASE_URL is configured and the tests. Data does not survive a restart.
type MemoryStore struct {
	mu      sync.RWMutex
	resumes map[string]*Resume
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{resumes: make(map[string]*Resume)}
}

func (m *MemoryStore) Create(_ context.Context, r *Resume) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *r
	m.resumes[r.ID] = &cp
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*Resume, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.resumes[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *MemoryStore) List(_ context.Context) ([]*Resume, error) {
	return m.list(func(*Resume) bool { return true }), nil
}

func (m *MemoryStore) ListByMinScore(_ context.Context, minScore int) ([]*Resume, error) {
	return m.list(func(r *Resume) bool {
		return r.MatchScore != nil && *r.MatchScore >= minScore
	}), nil
}

func (m *MemoryStore) list(keep func(*Resume) bool) []*Resume {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []*Resume{}
	for _, r := range m.resumes {
		if keep(r) {
			cp := *r
			out = append(out, &cp)
		}
	}
	// Highest score first, unscored last, then newest first.
	sort.Slice(out, func(i, j int) bool {
		si, sj := out[i].MatchScore, out[j].MatchScore
		switch {
		case si != nil && sj == nil:
			return true
		case si == nil && sj != nil:
			return false
		case si != nil && sj != nil && *si != *sj:
			return *si > *sj
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (m *MemoryStore) UpdateScore(_ context.Context, id string, score int, justification string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.resumes[id]
	if !ok {
		return ErrNotFound
	}
	r.MatchScore = &score
	r.Justification = &justification
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.resumes[id]; !ok {
		return ErrNotFound
	}
	delete(m.resumes, id)
	return nil
}
