package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/bytedance/sonic"
	"github.com/panjf2000/ants/v2"

	"github.com/webstats/matchstats/internal/platform/cache"
	"github.com/webstats/matchstats/internal/platform/logging"
	"github.com/webstats/matchstats/internal/platform/resilience"
)

// Cache keys shared between the warm-up rebuild and the HTTP read path.
const (
	CacheKeySeason    = "report:season"
	CacheKeyTeam      = "report:team"
	CacheKeyDashboard = "report:dashboard"
	CacheKeyStandings = "report:standings"
)

func CacheKeyPlayer(playerID string) string {
	return "report:player:" + playerID
}

func CacheKeyMatch(matchID string) string {
	return "report:match:" + matchID
}

// RebuildResult summarizes one warm-up run.
type RebuildResult struct {
	Players        int  `json:"players"`
	Warmed         int  `json:"warmed"`
	Failed         int  `json:"failed"`
	ClampedMinutes int  `json:"clamped_minutes"`
	Shared         bool `json:"shared"`
}

// RefreshService rebuilds every report from a fresh snapshot and warms
// the render cache. Concurrent rebuild requests collapse onto one run.
type RefreshService struct {
	playerSvc *PlayerReportService
	teamSvc   *TeamReportService
	dashSvc   *DashboardService
	store     *cache.Store
	logger    *logging.Logger
	workers   int
	flight    resilience.SingleFlight
}

func NewRefreshService(
	playerSvc *PlayerReportService,
	teamSvc *TeamReportService,
	dashSvc *DashboardService,
	store *cache.Store,
	logger *logging.Logger,
	workers int,
) *RefreshService {
	if workers < 1 {
		workers = 1
	}
	return &RefreshService{
		playerSvc: playerSvc,
		teamSvc:   teamSvc,
		dashSvc:   dashSvc,
		store:     store,
		logger:    logger,
		workers:   workers,
	}
}

// Rebuild drops the cached reports, recomputes them and re-renders the
// per-player payloads on a bounded worker pool.
func (s *RefreshService) Rebuild(ctx context.Context) (RebuildResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RefreshService.Rebuild")
	defer span.End()

	value, err, shared := s.flight.Do("rebuild", func() (any, error) {
		return s.rebuild(ctx)
	})
	if err != nil {
		return RebuildResult{}, err
	}

	result := value.(RebuildResult)
	result.Shared = shared
	return result, nil
}

func (s *RefreshService) rebuild(ctx context.Context) (RebuildResult, error) {
	s.store.DeletePrefix("report:")

	season, err := s.playerSvc.Season(ctx)
	if err != nil {
		return RebuildResult{}, fmt.Errorf("season report: %w", err)
	}

	result := RebuildResult{
		Players:        len(season.Players),
		ClampedMinutes: season.ClampedMinutes,
	}

	if err := s.render(CacheKeySeason, season); err != nil {
		return RebuildResult{}, err
	}
	result.Warmed++

	team, err := s.teamSvc.Season(ctx)
	if err != nil {
		return RebuildResult{}, fmt.Errorf("team report: %w", err)
	}
	if err := s.render(CacheKeyTeam, team); err != nil {
		return RebuildResult{}, err
	}
	result.Warmed++

	dashboard, err := s.dashSvc.Get(ctx)
	if err != nil {
		return RebuildResult{}, fmt.Errorf("dashboard: %w", err)
	}
	if err := s.render(CacheKeyDashboard, dashboard); err != nil {
		return RebuildResult{}, err
	}
	result.Warmed++

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return RebuildResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var warmed, failed atomic.Int32
	var wg sync.WaitGroup
	for _, player := range season.Players {
		player := player
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			if err := s.render(CacheKeyPlayer(player.PlayerID), player); err != nil {
				failed.Add(1)
				s.logger.WarnContext(ctx, "render player report failed",
					"player_id", player.PlayerID, "error", err)
				return
			}
			warmed.Add(1)
		}); err != nil {
			wg.Done()
			return RebuildResult{}, fmt.Errorf("submit render task: %w", err)
		}
	}
	wg.Wait()

	result.Warmed += int(warmed.Load())
	result.Failed = int(failed.Load())

	s.logger.InfoContext(ctx, "report cache rebuilt",
		"players", result.Players, "warmed", result.Warmed, "failed", result.Failed,
		"clamped_minutes", result.ClampedMinutes)

	return result, nil
}

func (s *RefreshService) render(key string, payload any) error {
	data, err := sonic.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	s.store.Set(key, data)
	return nil
}
