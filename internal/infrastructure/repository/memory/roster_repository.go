package memory

import (
	"context"
	"sync"

	"github.com/webstats/matchstats/internal/domain/roster"
)

type RosterRepository struct {
	mu      sync.RWMutex
	entries []roster.Entry
}

func NewRosterRepository(entries []roster.Entry) *RosterRepository {
	stored := make([]roster.Entry, len(entries))
	copy(stored, entries)

	return &RosterRepository{entries: stored}
}

func (r *RosterRepository) List(_ context.Context) ([]roster.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]roster.Entry, len(r.entries))
	copy(out, r.entries)

	return out, nil
}
