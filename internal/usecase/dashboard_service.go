package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/webstats/matchstats/internal/domain/matchday"
	"github.com/webstats/matchstats/internal/domain/roster"
	"github.com/webstats/matchstats/internal/domain/standings"
	"github.com/webstats/matchstats/internal/platform/textnorm"
)

type TeamInfo struct {
	Name string `json:"name"`
}

// MatchPayload decorates the dashboard's next (or most recent) fixture.
type MatchPayload struct {
	MatchID  string `json:"match_id"`
	Round    string `json:"round"`
	Date     string `json:"date,omitempty"`
	Home     bool   `json:"home"`
	Opponent string `json:"opponent"`
	Location string `json:"location,omitempty"`
	Status   string `json:"status"`
}

// SeasonPlayerCard is the dashboard's compact season line per player,
// deduplicated by roster identity.
type SeasonPlayerCard struct {
	PlayerID    string `json:"player_id"`
	Name        string `json:"name"`
	Appearances int    `json:"appearances"`
	Starts      int    `json:"starts"`
	Minutes     int    `json:"minutes"`
	Goals       int    `json:"goals"`
	YellowCards int    `json:"yellow_cards"`
	RedCards    int    `json:"red_cards"`
	Actions     int    `json:"actions"`
	Successes   int    `json:"successes"`
	SuccessRate int    `json:"success_rate"`
}

type Dashboard struct {
	Team        TeamInfo           `json:"team"`
	Standings   []standings.Row    `json:"standings"`
	NextMatch   *MatchPayload      `json:"next_match"`
	TeamMetrics TeamReport         `json:"team_metrics"`
	PlayerCards []SeasonPlayerCard `json:"player_cards"`
}

type DashboardService struct {
	snapshots    snapshotSource
	standingRepo standings.Repository
	teamName     string
	now          func() time.Time
}

func NewDashboardService(snapshots snapshotSource, standingRepo standings.Repository, teamName string) *DashboardService {
	return &DashboardService{
		snapshots:    snapshots,
		standingRepo: standingRepo,
		teamName:     teamName,
		now:          time.Now,
	}
}

// WithClock overrides the wall clock used to pick the next fixture.
func (s *DashboardService) WithClock(now func() time.Time) *DashboardService {
	s.now = now
	return s
}

func (s *DashboardService) Get(ctx context.Context) (Dashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Get")
	defer span.End()

	snap, err := s.snapshots.Build(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("build snapshot: %w", err)
	}

	table, err := s.Standings(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	season := buildSeasonReport(snap)

	return Dashboard{
		Team:        TeamInfo{Name: s.teamName},
		Standings:   table,
		NextMatch:   pickDashboardMatch(snap.Matches, s.now().UTC()),
		TeamMetrics: buildTeamReport(snap.Events, nil, 5, snap.ClampedMinutes),
		PlayerCards: seasonPlayerCards(season, snap.Roster),
	}, nil
}

// Standings returns the league table with points derived from wins and
// draws for rows the source left at zero.
func (s *DashboardService) Standings(ctx context.Context) ([]standings.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Standings")
	defer span.End()

	table, err := s.standingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list standings: %w", err)
	}
	for i := range table {
		if table[i].Points == 0 {
			table[i].Points = table[i].EffectivePoints()
		}
	}
	return table, nil
}

// pickDashboardMatch prefers the earliest fixture on or after today,
// falling back to the most recent played one.
func pickDashboardMatch(matches map[string]matchday.Match, now time.Time) *MatchPayload {
	if len(matches) == 0 {
		return nil
	}
	list := make([]matchday.Match, 0, len(matches))
	for _, m := range matches {
		list = append(list, m)
	}
	sort.SliceStable(list, func(i, j int) bool {
		di, dj := list[i].Date, list[j].Date
		if (di == nil) != (dj == nil) {
			return dj == nil
		}
		if di != nil && !di.Equal(*dj) {
			return di.Before(*dj)
		}
		return list[i].ID < list[j].ID
	})

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	for _, m := range list {
		if m.Date != nil && !m.Date.Before(today) {
			return matchPayload(m, "next")
		}
	}
	// No upcoming fixture: latest dated one, else highest ID.
	for i := len(list) - 1; i >= 0; i-- {
		if list[i].Date != nil {
			return matchPayload(list[i], "latest")
		}
	}
	return matchPayload(list[len(list)-1], "latest")
}

func matchPayload(m matchday.Match, status string) *MatchPayload {
	return &MatchPayload{
		MatchID:  m.ID,
		Round:    m.RoundLabel(),
		Date:     formatMatchDate(m),
		Home:     m.Home,
		Opponent: opponentLabel(m),
		Location: m.Location,
		Status:   status,
	}
}

// seasonPlayerCards flattens the season report into cards, keeping one
// card per roster identity: alias spellings collapse onto the first
// (highest-actions) row.
func seasonPlayerCards(season SeasonReport, snap *roster.Snapshot) []SeasonPlayerCard {
	seen := make(map[string]struct{}, len(season.Players))
	cards := make([]SeasonPlayerCard, 0, len(season.Players))
	for _, p := range season.Players {
		key, _ := snap.CanonicalKey(p.Name)
		if key == "" {
			key = textnorm.Slug(p.PlayerID)
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		cards = append(cards, SeasonPlayerCard{
			PlayerID:    p.PlayerID,
			Name:        p.Name,
			Appearances: p.Appearances,
			Starts:      p.Starts,
			Minutes:     p.Minutes,
			Goals:       p.Goals,
			YellowCards: p.YellowCards,
			RedCards:    p.RedCards,
			Actions:     p.TotalActions,
			Successes:   p.Successes,
			SuccessRate: intRate(p.Successes, p.TotalActions),
		})
	}
	return cards
}
