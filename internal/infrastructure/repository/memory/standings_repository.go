package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/webstats/matchstats/internal/domain/standings"
)

type StandingsRepository struct {
	mu   sync.RWMutex
	rows []standings.Row
}

func NewStandingsRepository(rows []standings.Row) *StandingsRepository {
	stored := make([]standings.Row, len(rows))
	copy(stored, rows)
	sort.SliceStable(stored, func(i, j int) bool {
		return stored[i].Position < stored[j].Position
	})

	return &StandingsRepository{rows: stored}
}

func (r *StandingsRepository) List(_ context.Context) ([]standings.Row, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]standings.Row, len(r.rows))
	copy(out, r.rows)

	return out, nil
}
