package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/webstats/matchstats/internal/domain/event"
)

type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// TeamReport is the team-wide frequency summary over confirmed events.
// No roster merge and no timelines; plain counting.
type TeamReport struct {
	TotalEvents    int          `json:"total_events"`
	TopEventTypes  []LabelCount `json:"top_event_types"`
	TopResults     []LabelCount `json:"top_results"`
	ClampedMinutes int          `json:"clamped_minutes"`
}

type TeamReportService struct {
	snapshots snapshotSource
}

func NewTeamReportService(snapshots snapshotSource) *TeamReportService {
	return &TeamReportService{snapshots: snapshots}
}

// Season aggregates the full confirmed event set.
func (s *TeamReportService) Season(ctx context.Context) (TeamReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamReportService.Season")
	defer span.End()

	snap, err := s.snapshots.Build(ctx)
	if err != nil {
		return TeamReport{}, fmt.Errorf("build snapshot: %w", err)
	}

	return buildTeamReport(snap.Events, nil, 5, snap.ClampedMinutes), nil
}

// buildTeamReport counts event types and results over the confirmed
// events passing the filter. Ties keep first-seen input order so the
// output is deterministic.
func buildTeamReport(events []event.Event, filter func(event.Event) bool, topN, clamped int) TeamReport {
	types := newFrequency()
	results := newFrequency()
	total := 0

	for _, e := range events {
		if !e.Confirmed() {
			continue
		}
		if filter != nil && !filter(e) {
			continue
		}
		total++
		types.Add(e.Type)
		if e.Result != "" {
			results.Add(e.Result)
		}
	}

	return TeamReport{
		TotalEvents:    total,
		TopEventTypes:  types.Top(topN),
		TopResults:     results.Top(topN),
		ClampedMinutes: clamped,
	}
}

// frequency counts labels preserving first-seen order for tie-breaks.
type frequency struct {
	order  []string
	counts map[string]int
}

func newFrequency() *frequency {
	return &frequency{counts: make(map[string]int)}
}

func (f *frequency) Add(label string) {
	if _, ok := f.counts[label]; !ok {
		f.order = append(f.order, label)
	}
	f.counts[label]++
}

func (f *frequency) Top(n int) []LabelCount {
	top := make([]LabelCount, 0, len(f.order))
	for _, label := range f.order {
		top = append(top, LabelCount{Label: label, Count: f.counts[label]})
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Count > top[j].Count
	})
	if len(top) > n {
		top = top[:n]
	}
	return top
}
