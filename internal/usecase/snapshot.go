package usecase

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/iter"

	"github.com/webstats/matchstats/internal/domain/event"
	"github.com/webstats/matchstats/internal/domain/matchday"
	"github.com/webstats/matchstats/internal/domain/roster"
)

// Snapshot is the immutable input view one aggregation run works over:
// the season's events (minutes already clamped), their classification,
// match metadata and the indexed roster. Built once per run, shared
// freely between report builds, never mutated.
type Snapshot struct {
	Events  []event.Event
	Facts   []event.Facts
	Matches map[string]matchday.Match
	Roster  *roster.Snapshot

	// ClampedMinutes counts events whose minute was forced into range
	// while loading. Surfaced on reports so dirty input stays visible.
	ClampedMinutes int
}

// SnapshotBuilder loads and classifies a fresh snapshot from the
// repositories.
type SnapshotBuilder struct {
	eventRepo  event.Repository
	matchRepo  matchday.Repository
	rosterRepo roster.Repository
	aliases    map[string]string
}

func NewSnapshotBuilder(eventRepo event.Repository, matchRepo matchday.Repository, rosterRepo roster.Repository) *SnapshotBuilder {
	return &SnapshotBuilder{
		eventRepo:  eventRepo,
		matchRepo:  matchRepo,
		rosterRepo: rosterRepo,
	}
}

// WithAliases overrides the default nickname table.
func (b *SnapshotBuilder) WithAliases(aliases map[string]string) *SnapshotBuilder {
	b.aliases = aliases
	return b
}

// Build loads events, matches and the roster and classifies every event.
// Classification is stateless per event, so it fans out across the
// snapshot; slice order is preserved and the folds downstream stay
// deterministic.
func (b *SnapshotBuilder) Build(ctx context.Context) (*Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SnapshotBuilder.Build")
	defer span.End()

	events, err := b.eventRepo.ListSeason(ctx)
	if err != nil {
		return nil, fmt.Errorf("list season events: %w", err)
	}

	clamped := 0
	for i := range events {
		if events[i].Minute == nil {
			continue
		}
		minute, wasClamped := event.ClampMinute(*events[i].Minute)
		if wasClamped {
			clamped++
			events[i].Minute = &minute
		}
	}

	facts := iter.Map(events, func(e *event.Event) event.Facts {
		return event.Classify(*e)
	})

	matches, err := b.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	byID := make(map[string]matchday.Match, len(matches))
	for _, m := range matches {
		byID[m.ID] = m
	}

	entries, err := b.rosterRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}

	return &Snapshot{
		Events:         events,
		Facts:          facts,
		Matches:        byID,
		Roster:         roster.NewSnapshot(entries, b.aliases),
		ClampedMinutes: clamped,
	}, nil
}
