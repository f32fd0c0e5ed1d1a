package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/webstats/matchstats/internal/config"
	"github.com/webstats/matchstats/internal/domain/event"
	"github.com/webstats/matchstats/internal/domain/matchday"
	"github.com/webstats/matchstats/internal/domain/roster"
	"github.com/webstats/matchstats/internal/domain/standings"
	"github.com/webstats/matchstats/internal/infrastructure/repository/memory"
	"github.com/webstats/matchstats/internal/infrastructure/repository/postgres"
	"github.com/webstats/matchstats/internal/interfaces/httpapi"
	"github.com/webstats/matchstats/internal/platform/cache"
	idgen "github.com/webstats/matchstats/internal/platform/id"
	"github.com/webstats/matchstats/internal/platform/logging"
	"github.com/webstats/matchstats/internal/usecase"
)

type repositories struct {
	events    event.Repository
	matches   matchday.Repository
	roster    roster.Repository
	standings standings.Repository
}

func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	repos, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	snapshots := usecase.NewSnapshotBuilder(repos.events, repos.matches, repos.roster).
		WithAliases(mergedAliases(cfg.PlayerAliases))

	playerSvc := usecase.NewPlayerReportService(snapshots)
	teamSvc := usecase.NewTeamReportService(snapshots)
	matchSvc := usecase.NewMatchReportService(snapshots)
	dashSvc := usecase.NewDashboardService(snapshots, repos.standings, cfg.TeamName)
	captureSvc := usecase.NewCaptureService(repos.events, repos.matches, idgen.NewRandomGenerator())

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}
	refreshSvc := usecase.NewRefreshService(playerSvc, teamSvc, dashSvc, store, logger, cfg.RefreshWorkers)

	handler := httpapi.NewHandler(playerSvc, teamSvc, matchSvc, dashSvc, captureSvc, refreshSvc, store, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	if cfg.DBURL == "" {
		logger.Info("using in-memory repositories", "reason", "DB_URL empty")
		return repositories{
			events:    memory.NewEventRepository(memory.SeedEvents()),
			matches:   memory.NewMatchRepository(memory.SeedMatches()),
			roster:    memory.NewRosterRepository(memory.SeedRoster()),
			standings: memory.NewStandingsRepository(memory.SeedStandings()),
		}, nil
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return repositories{}, err
	}
	if err := postgres.BootstrapSeed(ctx, db); err != nil {
		return repositories{}, err
	}
	logger.Info("using postgres repositories", "db", dbNameFromURL(cfg.DBURL))

	return repositories{
		events:    postgres.NewEventRepository(db),
		matches:   postgres.NewMatchRepository(db),
		roster:    postgres.NewRosterRepository(db),
		standings: postgres.NewStandingsRepository(db),
	}, nil
}

// mergedAliases overlays configured nicknames on the built-in table.
func mergedAliases(extra map[string]string) map[string]string {
	out := roster.DefaultAliases()
	for nick, canonical := range extra {
		out[nick] = canonical
	}
	return out
}
