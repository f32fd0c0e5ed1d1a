package event

import "fmt"

// Provenance tags where an event row came from.
type Provenance string

const (
	// ProvenanceLive marks rows captured while the match is in progress.
	ProvenanceLive Provenance = "live"
	// ProvenanceFinalized marks live rows promoted when the match sheet is saved.
	ProvenanceFinalized Provenance = "finalized"
	// ProvenanceImported marks rows loaded from an external bulk source.
	ProvenanceImported Provenance = "imported"
)

var AllProvenances = map[Provenance]struct{}{
	ProvenanceLive:      {},
	ProvenanceFinalized: {},
	ProvenanceImported:  {},
}

// MaxMinute is the upper bound for a recorded minute, extra time included.
const MaxMinute = 90 + 30

// Event is one recorded player action with free-text descriptive fields.
// The engine never mutates an event; the only lifecycle transition is the
// provenance promotion live -> finalized, owned by the repository.
type Event struct {
	ID          string
	MatchID     string
	PlayerID    string
	PlayerName  string
	Minute      *int
	Type        string
	Result      string
	Zone        string
	Third       string
	Observation string
	Provenance  Provenance
}

// Confirmed reports whether the event counts toward statistics. Live rows
// are visible to timeline reconstruction only until the match is finalized.
func (e Event) Confirmed() bool {
	return e.Provenance != ProvenanceLive
}

// LiveCaptured reports whether the event belongs to the touch-capture feed
// the timeline reconstruction reads (in-progress or finalized rows, never
// bulk imports).
func (e Event) LiveCaptured() bool {
	return e.Provenance == ProvenanceLive || e.Provenance == ProvenanceFinalized
}

func (e Event) Validate() error {
	if e.MatchID == "" {
		return fmt.Errorf("event match id is required")
	}
	if e.Type == "" {
		return fmt.Errorf("event type is required")
	}
	if _, ok := AllProvenances[e.Provenance]; !ok {
		return fmt.Errorf("invalid event provenance: %s", e.Provenance)
	}

	return nil
}

// ClampMinute forces minute into [0, MaxMinute]. The second return reports
// whether clamping happened; callers surface it as a counter instead of
// rejecting the row.
func ClampMinute(minute int) (int, bool) {
	if minute < 0 {
		return 0, true
	}
	if minute > MaxMinute {
		return MaxMinute, true
	}

	return minute, false
}
