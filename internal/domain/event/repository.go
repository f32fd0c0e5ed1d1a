package event

import "context"

// Repository exposes the event rows the engine reads and the two write
// operations the capture flow needs.
type Repository interface {
	// ListSeason returns every stored event ordered by match date, then
	// minute, then insertion order. Aggregation depends on that ordering
	// for deterministic tie-breaks.
	ListSeason(ctx context.Context) ([]Event, error)
	// ListByMatch returns one match's events in the same ordering.
	ListByMatch(ctx context.Context, matchID string) ([]Event, error)
	// Append stores a newly captured live event.
	Append(ctx context.Context, e Event) error
	// FinalizeMatch promotes every live event of the match to finalized
	// provenance and returns how many rows were promoted.
	FinalizeMatch(ctx context.Context, matchID string) (int, error)
}
