package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/webstats/matchstats/internal/platform/cache"
	"github.com/webstats/matchstats/internal/platform/logging"
	"github.com/webstats/matchstats/internal/usecase"
)

type Handler struct {
	playerService    *usecase.PlayerReportService
	teamService      *usecase.TeamReportService
	matchService     *usecase.MatchReportService
	dashboardService *usecase.DashboardService
	captureService   *usecase.CaptureService
	refreshService   *usecase.RefreshService
	store            *cache.Store
	logger           *logging.Logger
}

func NewHandler(
	playerService *usecase.PlayerReportService,
	teamService *usecase.TeamReportService,
	matchService *usecase.MatchReportService,
	dashboardService *usecase.DashboardService,
	captureService *usecase.CaptureService,
	refreshService *usecase.RefreshService,
	store *cache.Store,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		playerService:    playerService,
		teamService:      teamService,
		matchService:     matchService,
		dashboardService: dashboardService,
		captureService:   captureService,
		refreshService:   refreshService,
		store:            store,
		logger:           logger,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboard")
	defer span.End()

	h.serveCached(ctx, w, "get dashboard", usecase.CacheKeyDashboard, func(ctx context.Context) (any, error) {
		return h.dashboardService.Get(ctx)
	})
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	h.serveCached(ctx, w, "list players", usecase.CacheKeySeason, func(ctx context.Context) (any, error) {
		return h.playerService.Season(ctx)
	})
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	h.serveCached(ctx, w, "get player", usecase.CacheKeyPlayer(playerID), func(ctx context.Context) (any, error) {
		return h.playerService.Player(ctx, playerID)
	})
}

func (h *Handler) GetTeamMetrics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamMetrics")
	defer span.End()

	h.serveCached(ctx, w, "get team metrics", usecase.CacheKeyTeam, func(ctx context.Context) (any, error) {
		return h.teamService.Season(ctx)
	})
}

func (h *Handler) GetMatchReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchReport")
	defer span.End()

	matchID := r.PathValue("matchID")
	h.serveCached(ctx, w, "get match report", usecase.CacheKeyMatch(matchID), func(ctx context.Context) (any, error) {
		return h.matchService.Report(ctx, matchID)
	})
}

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings")
	defer span.End()

	h.serveCached(ctx, w, "list standings", usecase.CacheKeyStandings, func(ctx context.Context) (any, error) {
		return h.dashboardService.Standings(ctx)
	})
}

func (h *Handler) RegisterMatchAction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RegisterMatchAction")
	defer span.End()

	var input usecase.RegisterActionInput
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&input); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: decode request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	input.MatchID = r.PathValue("matchID")

	registered, err := h.captureService.RegisterAction(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "register action failed", "match_id", input.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.invalidateReports()
	writeSuccess(ctx, w, http.StatusCreated, registered)
}

func (h *Handler) FinalizeMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FinalizeMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	result, err := h.captureService.Finalize(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "finalize match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.invalidateReports()
	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) RefreshReports(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RefreshReports")
	defer span.End()

	result, err := h.refreshService.Rebuild(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "refresh reports failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

// serveCached renders a report through the cache so repeated reads reuse
// the bytes warmed by RefreshService. Misses collapse onto one build.
func (h *Handler) serveCached(ctx context.Context, w http.ResponseWriter, action, key string, load func(context.Context) (any, error)) {
	if h.store == nil {
		payload, err := load(ctx)
		if err != nil {
			h.logger.WarnContext(ctx, action+" failed", "error", err)
			writeError(ctx, w, err)
			return
		}
		writeSuccess(ctx, w, http.StatusOK, payload)
		return
	}

	rendered, err := h.store.GetOrLoad(key, func() ([]byte, error) {
		payload, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return sonic.Marshal(payload)
	})
	if err != nil {
		h.logger.WarnContext(ctx, action+" failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, json.RawMessage(rendered))
}

// invalidateReports drops every cached report after a write. The next
// read or refresh run repopulates them from a fresh snapshot.
func (h *Handler) invalidateReports() {
	if h.store == nil {
		return
	}
	h.store.DeletePrefix("report:")
}
