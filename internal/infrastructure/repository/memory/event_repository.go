package memory

import (
	"context"
	"sync"

	"github.com/webstats/matchstats/internal/domain/event"
)

// EventRepository keeps events in insertion order, which doubles as the
// stable fold order aggregation relies on.
type EventRepository struct {
	mu     sync.RWMutex
	events []event.Event
}

func NewEventRepository(events []event.Event) *EventRepository {
	stored := make([]event.Event, len(events))
	copy(stored, events)

	return &EventRepository{events: stored}
}

func (r *EventRepository) ListSeason(_ context.Context) ([]event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]event.Event, len(r.events))
	copy(out, r.events)

	return out, nil
}

func (r *EventRepository) ListByMatch(_ context.Context, matchID string) ([]event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]event.Event, 0)
	for _, e := range r.events {
		if e.MatchID == matchID {
			out = append(out, e)
		}
	}

	return out, nil
}

func (r *EventRepository) Append(_ context.Context, e event.Event) error {
	if err := e.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)

	return nil
}

func (r *EventRepository) FinalizeMatch(_ context.Context, matchID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	promoted := 0
	for i := range r.events {
		if r.events[i].MatchID == matchID && r.events[i].Provenance == event.ProvenanceLive {
			r.events[i].Provenance = event.ProvenanceFinalized
			promoted++
		}
	}

	return promoted, nil
}
