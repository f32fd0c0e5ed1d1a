package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/webstats/matchstats/internal/domain/event"
)

// PlayerCard is the compact per-player line the match report and
// dashboard carry.
type PlayerCard struct {
	PlayerID    string  `json:"player_id"`
	Name        string  `json:"name"`
	Actions     int     `json:"actions"`
	Successes   int     `json:"successes"`
	SuccessRate float64 `json:"success_rate"`
}

// MatchReport is the single-match variant of the team summary plus the
// per-player cards. Roster merge and timelines do not apply here.
type MatchReport struct {
	MatchID     string       `json:"match_id"`
	Round       string       `json:"round"`
	Date        string       `json:"date,omitempty"`
	Home        bool         `json:"home"`
	Opponent    string       `json:"opponent"`
	Location    string       `json:"location,omitempty"`
	TotalEvents int          `json:"total_events"`
	TopEvents   []LabelCount `json:"top_event_types"`
	TopResults  []LabelCount `json:"top_results"`
	PlayerCards []PlayerCard `json:"player_cards"`
}

type MatchReportService struct {
	snapshots snapshotSource
}

func NewMatchReportService(snapshots snapshotSource) *MatchReportService {
	return &MatchReportService{snapshots: snapshots}
}

func (s *MatchReportService) Report(ctx context.Context, matchID string) (MatchReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchReportService.Report")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return MatchReport{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	snap, err := s.snapshots.Build(ctx)
	if err != nil {
		return MatchReport{}, fmt.Errorf("build snapshot: %w", err)
	}

	m, ok := snap.Matches[matchID]
	if !ok {
		return MatchReport{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	inMatch := func(e event.Event) bool { return e.MatchID == matchID }
	team := buildTeamReport(snap.Events, inMatch, 6, 0)

	return MatchReport{
		MatchID:     m.ID,
		Round:       m.RoundLabel(),
		Date:        formatMatchDate(m),
		Home:        m.Home,
		Opponent:    opponentLabel(m),
		Location:    m.Location,
		TotalEvents: team.TotalEvents,
		TopEvents:   team.TopEventTypes,
		TopResults:  team.TopResults,
		PlayerCards: buildPlayerCards(snap, inMatch),
	}, nil
}

// buildPlayerCards tallies actions and successes per player over the
// confirmed events passing the filter, ordered by actions descending
// with name as the tie-break.
func buildPlayerCards(snap *Snapshot, filter func(event.Event) bool) []PlayerCard {
	order := make([]string, 0)
	cards := make(map[string]*PlayerCard)

	for i, e := range snap.Events {
		if !e.Confirmed() || e.PlayerID == "" {
			continue
		}
		if filter != nil && !filter(e) {
			continue
		}
		card, ok := cards[e.PlayerID]
		if !ok {
			card = &PlayerCard{PlayerID: e.PlayerID, Name: e.PlayerName}
			cards[e.PlayerID] = card
			order = append(order, e.PlayerID)
		}
		card.Actions++
		if snap.Facts[i].Success {
			card.Successes++
		}
	}

	out := make([]PlayerCard, 0, len(order))
	for _, playerID := range order {
		card := cards[playerID]
		card.SuccessRate = rate(card.Successes, card.Actions)
		out = append(out, *card)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Actions != out[j].Actions {
			return out[i].Actions > out[j].Actions
		}
		return out[i].Name < out[j].Name
	})

	return out
}
