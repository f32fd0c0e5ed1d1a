package usecase

import (
	"testing"
	"time"

	"github.com/webstats/matchstats/internal/infrastructure/repository/memory"
	"github.com/webstats/matchstats/internal/platform/cache"
	"github.com/webstats/matchstats/internal/platform/logging"
)

func newRefreshFixture() (*RefreshService, *cache.Store) {
	builder := newSeasonBuilder(memory.SeedEvents(), memory.SeedMatches(), memory.SeedRoster())
	store := cache.NewStore(time.Minute)
	svc := NewRefreshService(
		NewPlayerReportService(builder),
		NewTeamReportService(builder),
		NewDashboardService(builder, memory.NewStandingsRepository(memory.SeedStandings()), "CD Benabalbón"),
		store,
		logging.NewNop(),
		4,
	)
	return svc, store
}

func TestRebuildWarmsCache(t *testing.T) {
	svc, store := newRefreshFixture()

	result, err := svc.Rebuild(t.Context())
	if err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}
	if result.Players == 0 {
		t.Fatal("expected players in rebuild result")
	}
	if result.Failed != 0 {
		t.Fatalf("rebuild failed for %d players", result.Failed)
	}
	// Season, team and dashboard plus one payload per player.
	wantWarmed := 3 + result.Players
	if result.Warmed != wantWarmed {
		t.Fatalf("warmed = %d, want %d", result.Warmed, wantWarmed)
	}

	for _, key := range []string{CacheKeySeason, CacheKeyTeam, CacheKeyDashboard, CacheKeyPlayer(memory.PlayerIDGamez)} {
		if _, ok := store.Get(key); !ok {
			t.Fatalf("cache miss for %s after rebuild", key)
		}
	}
}

func TestRebuildInvalidatesStaleEntries(t *testing.T) {
	svc, store := newRefreshFixture()
	store.Set(CacheKeyMatch("match-desaparecido"), []byte("stale"))

	if _, err := svc.Rebuild(t.Context()); err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}
	if _, ok := store.Get(CacheKeyMatch("match-desaparecido")); ok {
		t.Fatal("rebuild must drop stale report entries")
	}
}
