// Package timeline reconstructs minutes played from the sparse live
// substitution feed: earliest entry, earliest exit, match-end fallback.
package timeline

import (
	"github.com/webstats/matchstats/internal/domain/event"
)

// Window is the derived in/out record for one (player, match) pairing.
// Entry and Exit stay nil until a substitution marker is observed; the
// live feed carries no ordering guarantee, so observation takes minima.
type Window struct {
	Entry        *int
	Exit         *int
	HasLiveEvent bool
}

// Result is the reconstructed participation for one (player, match).
type Result struct {
	Minutes    int
	Start      bool
	Appearance bool
}

// Reconstruct derives minutes played from a window and the match-end
// minute proxy (maximum minute observed among the match's live events).
// Missing halves degrade instead of failing: no entry means the player
// started at 0, no exit means they played to the end, and an inverted
// pair clamps to a zero-minute appearance.
func (w Window) Reconstruct(matchEnd int) Result {
	entry := 0
	if w.Entry != nil {
		entry = *w.Entry
	}
	exit := matchEnd
	if w.Exit != nil {
		exit = *w.Exit
	}
	if exit < entry {
		exit = entry
	}

	return Result{
		Minutes:    exit - entry,
		Start:      entry == 0,
		Appearance: w.HasLiveEvent,
	}
}

// Set accumulates windows keyed by (player, match) plus per-match end
// minutes while scanning the live feed.
type Set struct {
	windows  map[string]map[string]*Window
	matchEnd map[string]int
}

func NewSet() *Set {
	return &Set{
		windows:  make(map[string]map[string]*Window),
		matchEnd: make(map[string]int),
	}
}

// Observe folds one live-captured event into the set. Events without a
// player still push the match-end proxy; events without a minute mark the
// appearance but cannot move the timeline.
func (s *Set) Observe(e event.Event) {
	if !e.LiveCaptured() {
		return
	}
	if e.Minute != nil {
		if end, ok := s.matchEnd[e.MatchID]; !ok || *e.Minute > end {
			s.matchEnd[e.MatchID] = *e.Minute
		}
	}
	if e.PlayerID == "" {
		return
	}

	byMatch, ok := s.windows[e.PlayerID]
	if !ok {
		byMatch = make(map[string]*Window)
		s.windows[e.PlayerID] = byMatch
	}
	w, ok := byMatch[e.MatchID]
	if !ok {
		w = &Window{}
		byMatch[e.MatchID] = w
	}
	w.HasLiveEvent = true

	minute := 0
	if e.Minute != nil {
		minute = *e.Minute
	}
	if event.IsSubstitutionEntry(e) {
		w.Entry = minOf(w.Entry, minute)
	} else if event.IsSubstitutionExit(e) {
		w.Exit = minOf(w.Exit, minute)
	}
}

// MatchEnd returns the end-minute proxy for a match, zero when no live
// event carried a minute.
func (s *Set) MatchEnd(matchID string) int {
	return s.matchEnd[matchID]
}

// Windows returns the accumulated windows for one player keyed by match.
func (s *Set) Windows(playerID string) map[string]*Window {
	return s.windows[playerID]
}

// Players returns every player ID with at least one window.
func (s *Set) Players() []string {
	players := make([]string, 0, len(s.windows))
	for playerID := range s.windows {
		players = append(players, playerID)
	}
	return players
}

func minOf(current *int, candidate int) *int {
	if current == nil || candidate < *current {
		return &candidate
	}
	return current
}
