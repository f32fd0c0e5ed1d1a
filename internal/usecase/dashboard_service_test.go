package usecase

import (
	"testing"
	"time"

	"github.com/webstats/matchstats/internal/infrastructure/repository/memory"
)

func newDashboardService() *DashboardService {
	builder := newSeasonBuilder(memory.SeedEvents(), memory.SeedMatches(), memory.SeedRoster())
	standingRepo := memory.NewStandingsRepository(memory.SeedStandings())
	return NewDashboardService(builder, standingRepo, "CD Benabalbón")
}

func TestDashboardGet(t *testing.T) {
	svc := newDashboardService().WithClock(func() time.Time {
		return time.Date(2025, time.September, 24, 10, 0, 0, 0, time.UTC)
	})

	dashboard, err := svc.Get(t.Context())
	if err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}

	if dashboard.Team.Name != "CD Benabalbón" {
		t.Fatalf("team = %q", dashboard.Team.Name)
	}
	if len(dashboard.Standings) != 4 {
		t.Fatalf("standings = %d rows, want 4", len(dashboard.Standings))
	}
	if dashboard.Standings[0].Position != 1 {
		t.Fatalf("standings not ordered: %+v", dashboard.Standings[0])
	}
	// The bottom team's points were absent and derive from 3W+D.
	if dashboard.Standings[3].Points != 0 {
		t.Fatalf("derived points = %d, want 0 (no wins, no draws)", dashboard.Standings[3].Points)
	}

	if dashboard.NextMatch == nil {
		t.Fatal("expected a next match")
	}
	if dashboard.NextMatch.MatchID != memory.MatchIDJornada3 || dashboard.NextMatch.Status != "next" {
		t.Fatalf("next match = %+v, want jornada 3/next", dashboard.NextMatch)
	}

	if dashboard.TeamMetrics.TotalEvents == 0 {
		t.Fatal("team metrics missing")
	}
	if len(dashboard.PlayerCards) == 0 {
		t.Fatal("player cards missing")
	}
}

func TestDashboardFallsBackToLatestMatch(t *testing.T) {
	svc := newDashboardService().WithClock(func() time.Time {
		return time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC)
	})

	dashboard, err := svc.Get(t.Context())
	if err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}
	if dashboard.NextMatch == nil {
		t.Fatal("expected a fallback match")
	}
	if dashboard.NextMatch.MatchID != memory.MatchIDJornada3 || dashboard.NextMatch.Status != "latest" {
		t.Fatalf("fallback match = %+v, want jornada 3/latest", dashboard.NextMatch)
	}
}

func TestDashboardPlayerCardsDeduplicateAliases(t *testing.T) {
	svc := newDashboardService()

	dashboard, err := svc.Get(t.Context())
	if err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}

	seen := make(map[string]int)
	for _, card := range dashboard.PlayerCards {
		seen[card.Name]++
	}
	for name, count := range seen {
		if count > 1 {
			t.Fatalf("player %q appears %d times", name, count)
		}
	}
}
