package timeline

import (
	"testing"

	"github.com/webstats/matchstats/internal/domain/event"
)

func intPtr(v int) *int { return &v }

func TestReconstruct(t *testing.T) {
	tests := []struct {
		name     string
		window   Window
		matchEnd int
		want     Result
	}{
		{
			name:     "full match",
			window:   Window{HasLiveEvent: true},
			matchEnd: 90,
			want:     Result{Minutes: 90, Start: true, Appearance: true},
		},
		{
			name:     "late entry plays to the end",
			window:   Window{Entry: intPtr(60), HasLiveEvent: true},
			matchEnd: 90,
			want:     Result{Minutes: 30, Start: false, Appearance: true},
		},
		{
			name:     "entry and exit",
			window:   Window{Entry: intPtr(5), Exit: intPtr(85), HasLiveEvent: true},
			matchEnd: 90,
			want:     Result{Minutes: 80, Start: false, Appearance: true},
		},
		{
			name:     "early exit",
			window:   Window{Exit: intPtr(70), HasLiveEvent: true},
			matchEnd: 90,
			want:     Result{Minutes: 70, Start: true, Appearance: true},
		},
		{
			name:     "inverted pair clamps to zero minutes",
			window:   Window{Entry: intPtr(10), Exit: intPtr(5), HasLiveEvent: true},
			matchEnd: 90,
			want:     Result{Minutes: 0, Start: false, Appearance: true},
		},
		{
			name:     "unknown end with entry only",
			window:   Window{Entry: intPtr(30), HasLiveEvent: true},
			matchEnd: 0,
			want:     Result{Minutes: 0, Start: false, Appearance: true},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.window.Reconstruct(tc.matchEnd)
			if got != tc.want {
				t.Fatalf("Reconstruct(%d) = %+v, want %+v", tc.matchEnd, got, tc.want)
			}
		})
	}
}

func TestSetObserveTakesMinima(t *testing.T) {
	set := NewSet()
	// Feed arrives out of order; duplicate entries reconcile to minimum.
	set.Observe(event.Event{MatchID: "m1", PlayerID: "p1", Minute: intPtr(46), Type: "entrada", Provenance: event.ProvenanceLive})
	set.Observe(event.Event{MatchID: "m1", PlayerID: "p1", Minute: intPtr(5), Type: "entrada", Provenance: event.ProvenanceLive})
	set.Observe(event.Event{MatchID: "m1", PlayerID: "p1", Minute: intPtr(85), Type: "salida", Provenance: event.ProvenanceFinalized})
	set.Observe(event.Event{MatchID: "m1", PlayerID: "p2", Minute: intPtr(90), Type: "Pase", Provenance: event.ProvenanceLive})

	w := set.Windows("p1")["m1"]
	if w == nil {
		t.Fatal("expected a window for p1/m1")
	}
	if w.Entry == nil || *w.Entry != 5 {
		t.Fatalf("entry = %v, want 5", w.Entry)
	}
	if w.Exit == nil || *w.Exit != 85 {
		t.Fatalf("exit = %v, want 85", w.Exit)
	}
	if got := set.MatchEnd("m1"); got != 90 {
		t.Fatalf("match end = %d, want 90", got)
	}

	got := w.Reconstruct(set.MatchEnd("m1"))
	want := Result{Minutes: 80, Start: false, Appearance: true}
	if got != want {
		t.Fatalf("reconstructed %+v, want %+v", got, want)
	}
}

func TestSetIgnoresImportedRows(t *testing.T) {
	set := NewSet()
	set.Observe(event.Event{MatchID: "m1", PlayerID: "p1", Minute: intPtr(88), Type: "entrada", Provenance: event.ProvenanceImported})

	if set.Windows("p1") != nil {
		t.Fatal("imported rows must not open windows")
	}
	if set.MatchEnd("m1") != 0 {
		t.Fatal("imported rows must not move the match end")
	}
}

func TestSetEventWithoutMinuteMarksAppearance(t *testing.T) {
	set := NewSet()
	set.Observe(event.Event{MatchID: "m1", PlayerID: "p1", Type: "Pase", Provenance: event.ProvenanceLive})
	set.Observe(event.Event{MatchID: "m1", PlayerID: "p2", Minute: intPtr(90), Type: "Tiro", Provenance: event.ProvenanceLive})

	w := set.Windows("p1")["m1"]
	if w == nil || !w.HasLiveEvent {
		t.Fatal("minute-less event must still mark the appearance")
	}
	if w.Entry != nil || w.Exit != nil {
		t.Fatal("minute-less event must not move the timeline")
	}

	got := w.Reconstruct(set.MatchEnd("m1"))
	want := Result{Minutes: 90, Start: true, Appearance: true}
	if got != want {
		t.Fatalf("reconstructed %+v, want %+v", got, want)
	}
}

func TestSetTracksPlayerlessEventsForMatchEndOnly(t *testing.T) {
	set := NewSet()
	set.Observe(event.Event{MatchID: "m1", Minute: intPtr(93), Type: "Final", Provenance: event.ProvenanceLive})

	if len(set.Players()) != 0 {
		t.Fatal("playerless events must not create windows")
	}
	if set.MatchEnd("m1") != 93 {
		t.Fatalf("match end = %d, want 93", set.MatchEnd("m1"))
	}
}
