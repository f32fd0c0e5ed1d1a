package memory

import (
	"context"
	"sync"

	"github.com/webstats/matchstats/internal/domain/matchday"
)

type MatchRepository struct {
	mu      sync.RWMutex
	matches []matchday.Match
	byID    map[string]matchday.Match
}

func NewMatchRepository(matches []matchday.Match) *MatchRepository {
	stored := make([]matchday.Match, len(matches))
	copy(stored, matches)
	byID := make(map[string]matchday.Match, len(stored))
	for _, m := range stored {
		byID[m.ID] = m
	}

	return &MatchRepository{matches: stored, byID: byID}
}

func (r *MatchRepository) List(_ context.Context) ([]matchday.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]matchday.Match, len(r.matches))
	copy(out, r.matches)

	return out, nil
}

func (r *MatchRepository) Get(_ context.Context, matchID string) (matchday.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[matchID]

	return m, ok, nil
}
