package event

import "testing"

func intPtr(v int) *int { return &v }

func TestIsGoal(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  bool
	}{
		{"type keyword", Event{Type: "Gol"}, true},
		{"accented result", Event{Type: "Remate", Result: "GOLES"}, true},
		{"observation keyword", Event{Type: "Jugada", Observation: "acaba en gol anotado"}, true},
		{"english import", Event{Type: "goal"}, true},
		{"mixed case with marks", Event{Type: "GÓL"}, true},
		{"empty", Event{}, false},
		{"whitespace only", Event{Type: "   "}, false},
		{"unrelated", Event{Type: "Pase", Result: "OK"}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsGoal(tc.event); got != tc.want {
				t.Fatalf("IsGoal(%+v) = %v, want %v", tc.event, got, tc.want)
			}
		})
	}
}

func TestIsSuccessIsExact(t *testing.T) {
	tests := []struct {
		result string
		want   bool
	}{
		{"OK", true},
		{"ok ", true},
		{"Ganado", true},
		{"ganó", true},
		{"G", true},
		{"no ok", false},
		{"ganado el duelo", false},
		{"", false},
		{"fallado", false},
	}

	for _, tc := range tests {
		t.Run(tc.result, func(t *testing.T) {
			if got := IsSuccess(tc.result); got != tc.want {
				t.Fatalf("IsSuccess(%q) = %v, want %v", tc.result, got, tc.want)
			}
		})
	}
}

func TestCardPredicatesReadZone(t *testing.T) {
	yellow := Event{Type: "Falta", Zone: "Tarjeta Amarilla"}
	if !IsYellowCard(yellow) {
		t.Fatal("yellow card keyword in zone must classify")
	}
	red := Event{Type: "Expulsión", Result: "ROJA"}
	if !IsRedCard(red) {
		t.Fatal("red card keyword in result must classify")
	}
	if IsYellowCard(red) {
		t.Fatal("red card event must not read as yellow")
	}
}

func TestDuelClassification(t *testing.T) {
	e := Event{Type: "Duelo aéreo", Result: "Ganado"}
	if !IsDuel(e) {
		t.Fatal("duelo must classify as duel")
	}
	if !IsDuelWon(e.Result) {
		t.Fatal("ganado must count as duel won")
	}
	if IsSuccess(e.Result) != true {
		t.Fatal("ganado is also a generic success token")
	}

	// Duel success is broader than generic success.
	if IsSuccess("recuperado favorable") {
		t.Fatal("phrase result must not be a generic success")
	}
	if !IsDuelWon("recuperado favorable") {
		t.Fatal("phrase result must count for duels")
	}
}

func TestSubstitutionEntryExitExclusive(t *testing.T) {
	tests := []struct {
		name      string
		event     Event
		wantEntry bool
		wantExit  bool
	}{
		{"bare entrada type", Event{Type: "entrada", Minute: intPtr(5)}, true, false},
		{"bare salida type", Event{Type: "salida", Minute: intPtr(85)}, false, true},
		{"long form entry", Event{Type: "Sustitución", Result: "entrante"}, true, false},
		{"long form exit", Event{Type: "Cambio", Zone: "bajada"}, false, true},
		{"substitution without marker", Event{Type: "Sustitución"}, false, false},
		{"marker without substitution context", Event{Type: "Pase", Result: "subida"}, false, false},
		{"ambiguous markers resolve to entry", Event{Type: "Cambio", Result: "entrada", Zone: "salida"}, true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			facts := Classify(tc.event)
			if facts.SubEntry != tc.wantEntry {
				t.Fatalf("SubEntry = %v, want %v", facts.SubEntry, tc.wantEntry)
			}
			if facts.SubExit != tc.wantExit {
				t.Fatalf("SubExit = %v, want %v", facts.SubExit, tc.wantExit)
			}
			if facts.SubEntry && facts.SubExit {
				t.Fatal("an event can never be both entry and exit")
			}
		})
	}
}

func TestClassifyShotScenario(t *testing.T) {
	e := Event{Type: "Disparo", Result: "OK", Zone: "Ataque Centro"}
	facts := Classify(e)
	if !facts.Shot {
		t.Fatal("Disparo must classify as shot")
	}
	if !facts.Success {
		t.Fatal("OK result must classify as success")
	}
	if facts.Goal || facts.SubEntry || facts.SubExit {
		t.Fatalf("unexpected extra facts: %+v", facts)
	}
}

func TestCategoriesMayOverlap(t *testing.T) {
	e := Event{Type: "Pase", Observation: "remate tras el pase"}
	facts := Classify(e)
	if !facts.Pass || !facts.Shot {
		t.Fatalf("ambiguous text should keep both categories, got %+v", facts)
	}
}

func TestClampMinute(t *testing.T) {
	tests := []struct {
		minute      int
		want        int
		wantClamped bool
	}{
		{-3, 0, true},
		{0, 0, false},
		{90, 90, false},
		{120, 120, false},
		{121, 120, true},
	}

	for _, tc := range tests {
		got, clamped := ClampMinute(tc.minute)
		if got != tc.want || clamped != tc.wantClamped {
			t.Fatalf("ClampMinute(%d) = (%d, %v), want (%d, %v)", tc.minute, got, clamped, tc.want, tc.wantClamped)
		}
	}
}

func TestProvenance(t *testing.T) {
	live := Event{MatchID: "m1", Type: "Pase", Provenance: ProvenanceLive}
	if live.Confirmed() {
		t.Fatal("live events must not be confirmed")
	}
	if !live.LiveCaptured() {
		t.Fatal("live events belong to the capture feed")
	}

	finalized := Event{MatchID: "m1", Type: "Pase", Provenance: ProvenanceFinalized}
	if !finalized.Confirmed() || !finalized.LiveCaptured() {
		t.Fatal("finalized events are both confirmed and capture-feed")
	}

	imported := Event{MatchID: "m1", Type: "Pase", Provenance: ProvenanceImported}
	if !imported.Confirmed() || imported.LiveCaptured() {
		t.Fatal("imported events are confirmed but not capture-feed")
	}
}

func TestEventValidate(t *testing.T) {
	valid := Event{MatchID: "m1", Type: "Pase", Provenance: ProvenanceLive}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := (Event{Type: "Pase", Provenance: ProvenanceLive}).Validate(); err == nil {
		t.Fatal("missing match id must fail validation")
	}
	if err := (Event{MatchID: "m1", Provenance: ProvenanceLive}).Validate(); err == nil {
		t.Fatal("missing type must fail validation")
	}
	if err := (Event{MatchID: "m1", Type: "Pase", Provenance: "batch"}).Validate(); err == nil {
		t.Fatal("unknown provenance must fail validation")
	}
}
