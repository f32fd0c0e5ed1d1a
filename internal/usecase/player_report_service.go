package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/webstats/matchstats/internal/domain/event"
	"github.com/webstats/matchstats/internal/domain/matchday"
	"github.com/webstats/matchstats/internal/domain/pitch"
	"github.com/webstats/matchstats/internal/domain/roster"
	"github.com/webstats/matchstats/internal/domain/timeline"
	"github.com/webstats/matchstats/internal/platform/textnorm"
)

type ZoneCount struct {
	Zone  pitch.Zone `json:"zone"`
	Count int        `json:"count"`
}

type ThirdCount struct {
	Third pitch.Third `json:"third"`
	Count int         `json:"count"`
}

type ThirdSummaryEntry struct {
	Label pitch.Third `json:"label"`
	Count int         `json:"count"`
	Pct   float64     `json:"pct"`
}

type PositionCount struct {
	Label pitch.Zone `json:"label"`
	Count int        `json:"count"`
}

// FieldZone decorates one grid cell with its tally for field overlays.
type FieldZone struct {
	pitch.Cell
	Count int `json:"count"`
}

type MatchLine struct {
	MatchID     string `json:"match_id"`
	Round       string `json:"round"`
	Date        string `json:"date,omitempty"`
	Home        bool   `json:"home"`
	Opponent    string `json:"opponent"`
	Actions     int    `json:"actions"`
	Successes   int    `json:"successes"`
	SuccessRate int    `json:"success_rate"`
}

type DuelSummary struct {
	Won   int     `json:"won"`
	Total int     `json:"total"`
	Rate  float64 `json:"rate"`
}

type ShotSummary struct {
	Attempts int     `json:"attempts"`
	OnTarget int     `json:"on_target"`
	Accuracy float64 `json:"accuracy"`
}

type PassSummary struct {
	Attempts  int     `json:"attempts"`
	Completed int     `json:"completed"`
	Accuracy  float64 `json:"accuracy"`
}

// PlayerReport is the season aggregate for one player: classified event
// totals merged onto the roster baseline.
type PlayerReport struct {
	PlayerID    string `json:"player_id"`
	Name        string `json:"name"`
	Position    string `json:"position,omitempty"`
	Age         int    `json:"age,omitempty"`
	RosterMatch string `json:"roster_match"`

	TotalActions int     `json:"total_actions"`
	Successes    int     `json:"successes"`
	SuccessRate  float64 `json:"success_rate"`

	Goals       int `json:"goals"`
	Assists     int `json:"assists"`
	YellowCards int `json:"yellow_cards"`
	RedCards    int `json:"red_cards"`

	CallUps     int `json:"call_ups"`
	Appearances int `json:"appearances"`
	Starts      int `json:"starts"`
	Minutes     int `json:"minutes"`

	Duels  DuelSummary `json:"duels"`
	Shots  ShotSummary `json:"shots"`
	Passes PassSummary `json:"passes"`

	ZoneHeatmap       []ZoneCount         `json:"zone_heatmap"`
	ThirdSummary      []ThirdSummaryEntry `json:"third_summary"`
	ThirdHeatmap      []ThirdCount        `json:"third_heatmap"`
	PositionBreakdown []PositionCount     `json:"position_breakdown"`
	DominantPosition  pitch.Zone          `json:"dominant_position,omitempty"`
	FieldZones        []FieldZone         `json:"field_zones"`

	Matches    []MatchLine `json:"matches"`
	MatchCount int         `json:"match_count"`
	HasEvents  bool        `json:"has_events"`
}

// SeasonReport is the full per-player season output plus run-level
// quality counters.
type SeasonReport struct {
	Players        []PlayerReport `json:"players"`
	ClampedMinutes int            `json:"clamped_minutes"`
}

type snapshotSource interface {
	Build(ctx context.Context) (*Snapshot, error)
}

type PlayerReportService struct {
	snapshots snapshotSource
}

func NewPlayerReportService(snapshots snapshotSource) *PlayerReportService {
	return &PlayerReportService{snapshots: snapshots}
}

// Season rebuilds the per-player season report from scratch: a fold over
// the confirmed events, timeline reconstruction over the live feed, then
// the roster baseline merge and backfill.
func (s *PlayerReportService) Season(ctx context.Context) (SeasonReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerReportService.Season")
	defer span.End()

	snap, err := s.snapshots.Build(ctx)
	if err != nil {
		return SeasonReport{}, fmt.Errorf("build snapshot: %w", err)
	}

	return buildSeasonReport(snap), nil
}

// Player returns one player's season report by ID.
func (s *PlayerReportService) Player(ctx context.Context, playerID string) (PlayerReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerReportService.Player")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return PlayerReport{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	snap, err := s.snapshots.Build(ctx)
	if err != nil {
		return PlayerReport{}, fmt.Errorf("build snapshot: %w", err)
	}

	report := buildSeasonReport(snap)
	for _, player := range report.Players {
		if player.PlayerID == playerID {
			return player, nil
		}
	}

	return PlayerReport{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
}

type playerAccumulator struct {
	playerID    string
	name        string
	position    string
	age         int
	rosterMatch roster.MatchKind

	totalActions int
	successes    int
	goals        int
	assists      int
	yellowCards  int
	redCards     int

	callUps     int
	appearances int
	starts      int
	minutes     int

	duelsTotal int
	duelsWon   int

	shotAttempts  int
	shotsOnTarget int

	passAttempts    int
	passesCompleted int

	zoneCounts     map[pitch.Zone]int
	positionCounts map[pitch.Zone]int
	thirdCounts    map[pitch.Third]int

	matchOrder []string
	matches    map[string]*MatchLine

	hasEvents bool
}

func newPlayerAccumulator(playerID, name string, entry roster.Entry, kind roster.MatchKind) *playerAccumulator {
	return &playerAccumulator{
		playerID:       playerID,
		name:           name,
		position:       entry.Position,
		age:            entry.Age,
		rosterMatch:    kind,
		callUps:        entry.CallUps,
		appearances:    entry.Appearances,
		starts:         entry.Starts,
		minutes:        entry.Minutes,
		goals:          entry.Goals,
		assists:        entry.Assists,
		yellowCards:    entry.YellowCards,
		redCards:       entry.RedCards,
		zoneCounts:     make(map[pitch.Zone]int),
		positionCounts: make(map[pitch.Zone]int),
		thirdCounts:    make(map[pitch.Third]int),
		matches:        make(map[string]*MatchLine),
	}
}

func buildSeasonReport(snap *Snapshot) SeasonReport {
	accumulators := make(map[string]*playerAccumulator)
	order := make([]string, 0)
	resolvedKeys := make(map[string]struct{})

	acquire := func(playerID, name string) *playerAccumulator {
		if acc, ok := accumulators[playerID]; ok {
			return acc
		}
		entry, kind := snap.Roster.Resolve(name)
		if kind != roster.MatchNone {
			resolvedKeys[textnorm.Slug(entry.Name)] = struct{}{}
		}
		acc := newPlayerAccumulator(playerID, name, entry, kind)
		accumulators[playerID] = acc
		order = append(order, playerID)
		return acc
	}

	for i, e := range snap.Events {
		if !e.Confirmed() || e.PlayerID == "" {
			continue
		}
		acc := acquire(e.PlayerID, e.PlayerName)
		foldEvent(acc, e, snap.Facts[i], snap.Matches)
	}

	// Timeline reconstruction over the live capture feed.
	set := timeline.NewSet()
	for _, e := range snap.Events {
		set.Observe(e)
	}
	for _, playerID := range set.Players() {
		acc, ok := accumulators[playerID]
		if !ok {
			// Live-only player: no confirmed events yet, still appears.
			name := playerNameFromEvents(snap.Events, playerID)
			acc = acquire(playerID, name)
		}
		for matchID, window := range set.Windows(playerID) {
			result := window.Reconstruct(set.MatchEnd(matchID))
			acc.minutes += result.Minutes
			if result.Appearance {
				acc.appearances++
			}
			if result.Start {
				acc.starts++
			}
		}
		if acc.appearances > acc.callUps {
			acc.callUps = acc.appearances
		}
	}

	// Roster players with no events still get a baseline-only row.
	for _, entry := range snap.Roster.Entries() {
		key := textnorm.Slug(entry.Name)
		if _, ok := resolvedKeys[key]; ok {
			continue
		}
		acc := newPlayerAccumulator(key, entry.Name, entry, roster.MatchExact)
		accumulators[key] = acc
		order = append(order, key)
	}

	players := make([]PlayerReport, 0, len(order))
	for _, playerID := range order {
		players = append(players, finishPlayerReport(accumulators[playerID]))
	}
	sort.SliceStable(players, func(i, j int) bool {
		if players[i].TotalActions != players[j].TotalActions {
			return players[i].TotalActions > players[j].TotalActions
		}
		if players[i].Name != players[j].Name {
			return players[i].Name < players[j].Name
		}
		return players[i].PlayerID < players[j].PlayerID
	})

	return SeasonReport{Players: players, ClampedMinutes: snap.ClampedMinutes}
}

func foldEvent(acc *playerAccumulator, e event.Event, facts event.Facts, matches map[string]matchday.Match) {
	acc.hasEvents = true
	acc.totalActions++
	if facts.Success {
		acc.successes++
	}
	if facts.Goal {
		acc.goals++
	}
	if facts.Assist {
		acc.assists++
	}
	if facts.YellowCard {
		acc.yellowCards++
	}
	if facts.RedCard {
		acc.redCards++
	}
	if facts.Duel {
		acc.duelsTotal++
		if facts.DuelWon {
			acc.duelsWon++
		}
	}
	if facts.Shot {
		acc.shotAttempts++
		if facts.Success {
			acc.shotsOnTarget++
		}
	}
	if facts.Pass {
		acc.passAttempts++
		if facts.Success {
			acc.passesCompleted++
		}
	}

	if zone, ok := pitch.MapZone(e.Zone); ok {
		acc.zoneCounts[zone]++
	}
	third, ok := pitch.MapThird(e.Third)
	if !ok {
		third, ok = pitch.ThirdFromZone(e.Zone)
	}
	if ok {
		acc.thirdCounts[third]++
	}
	if position, ok := pitch.MapPosition(acc.position, e.Zone); ok {
		acc.positionCounts[position]++
	}

	line, ok := acc.matches[e.MatchID]
	if !ok {
		m := matches[e.MatchID]
		line = &MatchLine{
			MatchID:  e.MatchID,
			Round:    m.RoundLabel(),
			Date:     formatMatchDate(m),
			Home:     m.Home,
			Opponent: opponentLabel(m),
		}
		acc.matches[e.MatchID] = line
		acc.matchOrder = append(acc.matchOrder, e.MatchID)
	}
	line.Actions++
	if facts.Success {
		line.Successes++
	}
	line.SuccessRate = intRate(line.Successes, line.Actions)
}

func finishPlayerReport(acc *playerAccumulator) PlayerReport {
	lines := make([]MatchLine, 0, len(acc.matchOrder))
	for _, matchID := range acc.matchOrder {
		lines = append(lines, *acc.matches[matchID])
	}
	sortMatchLines(lines)

	totalThirds := 0
	for _, third := range pitch.Thirds() {
		totalThirds += acc.thirdCounts[third]
	}
	thirdSummary := make([]ThirdSummaryEntry, 0, 3)
	for _, third := range pitch.Thirds() {
		count := acc.thirdCounts[third]
		thirdSummary = append(thirdSummary, ThirdSummaryEntry{
			Label: third,
			Count: count,
			Pct:   rate(count, totalThirds),
		})
	}

	thirdHeatmap := make([]ThirdCount, 0, 3)
	for _, third := range pitch.Thirds() {
		thirdHeatmap = append(thirdHeatmap, ThirdCount{Third: third, Count: acc.thirdCounts[third]})
	}
	sort.SliceStable(thirdHeatmap, func(i, j int) bool {
		return thirdHeatmap[i].Count > thirdHeatmap[j].Count
	})
	if len(thirdHeatmap) > 5 {
		thirdHeatmap = thirdHeatmap[:5]
	}

	positions := make([]PositionCount, 0, len(acc.positionCounts))
	for _, zone := range pitch.Zones() {
		if count, ok := acc.positionCounts[zone]; ok {
			positions = append(positions, PositionCount{Label: zone, Count: count})
		}
	}
	sort.SliceStable(positions, func(i, j int) bool {
		return positions[i].Count > positions[j].Count
	})
	dominant := pitch.Zone("")
	if len(positions) > 0 {
		dominant = positions[0].Label
	}

	fieldZones := make([]FieldZone, 0, 9)
	zoneHeatmap := make([]ZoneCount, 0, 9)
	for _, cell := range pitch.Grid() {
		count := acc.zoneCounts[cell.Zone]
		fieldZones = append(fieldZones, FieldZone{Cell: cell, Count: count})
		if count > 0 {
			zoneHeatmap = append(zoneHeatmap, ZoneCount{Zone: cell.Zone, Count: count})
		}
	}
	sort.SliceStable(zoneHeatmap, func(i, j int) bool {
		return zoneHeatmap[i].Count > zoneHeatmap[j].Count
	})
	if len(zoneHeatmap) > 5 {
		zoneHeatmap = zoneHeatmap[:5]
	}

	return PlayerReport{
		PlayerID:    acc.playerID,
		Name:        acc.name,
		Position:    acc.position,
		Age:         acc.age,
		RosterMatch: acc.rosterMatch.String(),

		TotalActions: acc.totalActions,
		Successes:    acc.successes,
		SuccessRate:  rate(acc.successes, acc.totalActions),

		Goals:       acc.goals,
		Assists:     acc.assists,
		YellowCards: acc.yellowCards,
		RedCards:    acc.redCards,

		CallUps:     acc.callUps,
		Appearances: acc.appearances,
		Starts:      acc.starts,
		Minutes:     acc.minutes,

		Duels: DuelSummary{
			Won:   acc.duelsWon,
			Total: acc.duelsTotal,
			Rate:  rate(acc.duelsWon, acc.duelsTotal),
		},
		Shots: ShotSummary{
			Attempts: acc.shotAttempts,
			OnTarget: acc.shotsOnTarget,
			Accuracy: rate(acc.shotsOnTarget, acc.shotAttempts),
		},
		Passes: PassSummary{
			Attempts:  acc.passAttempts,
			Completed: acc.passesCompleted,
			Accuracy:  rate(acc.passesCompleted, acc.passAttempts),
		},

		ZoneHeatmap:       zoneHeatmap,
		ThirdSummary:      thirdSummary,
		ThirdHeatmap:      thirdHeatmap,
		PositionBreakdown: positions,
		DominantPosition:  dominant,
		FieldZones:        fieldZones,

		Matches:    lines,
		MatchCount: len(lines),
		HasEvents:  acc.hasEvents,
	}
}

func sortMatchLines(lines []MatchLine) {
	sort.SliceStable(lines, func(i, j int) bool {
		ni, iOK := matchday.RoundNumber(lines[i].Round)
		nj, jOK := matchday.RoundNumber(lines[j].Round)
		if iOK != jOK {
			return iOK
		}
		if iOK && ni != nj {
			return ni < nj
		}
		if lines[i].Date != lines[j].Date {
			return lines[i].Date < lines[j].Date
		}
		return lines[i].MatchID < lines[j].MatchID
	})
}

func playerNameFromEvents(events []event.Event, playerID string) string {
	for _, e := range events {
		if e.PlayerID == playerID && e.PlayerName != "" {
			return e.PlayerName
		}
	}
	return playerID
}

func opponentLabel(m matchday.Match) string {
	if m.Opponent == "" {
		return "Rival desconocido"
	}
	return m.Opponent
}

func formatMatchDate(m matchday.Match) string {
	if m.Date == nil {
		return ""
	}
	return m.Date.Format("2006-01-02")
}

// rate returns n/d as a percentage rounded to one decimal, 0 when the
// denominator is 0.
func rate(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return math.Round(float64(n)/float64(d)*1000) / 10
}

// intRate returns n/d as a whole percentage, 0 when the denominator is 0.
func intRate(n, d int) int {
	if d == 0 {
		return 0
	}
	return int(math.Round(float64(n) / float64(d) * 100))
}
