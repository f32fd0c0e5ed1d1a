package roster

import "testing"

func seasonEntries() []Entry {
	return []Entry{
		{Name: "Antonio Gámez Paniagua", Position: "Delantero", Age: 24, Appearances: 10, Minutes: 780},
		{Name: "Manuel Torres Palenzuela", Position: "Medio Centro", Age: 28, Appearances: 12, Minutes: 1020},
		{Name: "Nicolás Villalba Alcaide", Position: "Central", Age: 21, Appearances: 8, Minutes: 640},
		{Name: "Victor Ruiz Postigo", Position: "Lateral Derecho", Age: 26, Appearances: 11, Minutes: 900},
	}
}

func TestResolveExact(t *testing.T) {
	snap := NewSnapshot(seasonEntries(), nil)

	entry, kind := snap.Resolve("Antonio Gámez Paniagua")
	if kind != MatchExact {
		t.Fatalf("kind = %s, want exact", kind)
	}
	if entry.Minutes != 780 {
		t.Fatalf("resolved wrong entry: %+v", entry)
	}

	// Diacritics and case do not matter for the exact path.
	if _, kind := snap.Resolve("antonio gamez paniagua"); kind != MatchExact {
		t.Fatalf("normalized spelling resolved as %s, want exact", kind)
	}
}

func TestResolveAlias(t *testing.T) {
	snap := NewSnapshot(seasonEntries(), nil)

	aliased, kind := snap.Resolve("Manu")
	if kind != MatchAliased {
		t.Fatalf("kind = %s, want aliased", kind)
	}
	direct, directKind := snap.Resolve("Manuel Torres Palenzuela")
	if directKind != MatchExact {
		t.Fatalf("kind = %s, want exact", directKind)
	}
	if aliased != direct {
		t.Fatal("alias and target must resolve to the identical entry")
	}
}

func TestResolveSubstringFallback(t *testing.T) {
	snap := NewSnapshot(seasonEntries(), nil)

	entry, kind := snap.Resolve("Villalba")
	if kind != MatchSubstring {
		t.Fatalf("kind = %s, want substring", kind)
	}
	if entry.Age != 21 {
		t.Fatalf("resolved wrong entry: %+v", entry)
	}

	// Containment works in both directions.
	if _, kind := snap.Resolve("el central Nicolás Villalba Alcaide del filial"); kind != MatchSubstring {
		t.Fatalf("kind = %s, want substring", kind)
	}
}

func TestResolveSubstringIsDeterministic(t *testing.T) {
	// Two candidates contain "ruiz"; canonical-key order decides, so the
	// same query always lands on the same entry.
	entries := append(seasonEntries(), Entry{Name: "Francisco Javier Ruiz Pérez", Age: 30})
	for i := 0; i < 20; i++ {
		snap := NewSnapshot(entries, nil)
		entry, kind := snap.Resolve("Ruiz")
		if kind != MatchSubstring {
			t.Fatalf("kind = %s, want substring", kind)
		}
		if entry.Age != 30 {
			t.Fatalf("run %d resolved %q, want Francisco Javier Ruiz Pérez", i, entry.Name)
		}
	}
}

func TestResolveNoMatch(t *testing.T) {
	snap := NewSnapshot(seasonEntries(), nil)

	for _, name := range []string{"", "   ", "Jugador Desconocido"} {
		if entry, kind := snap.Resolve(name); kind != MatchNone || entry != (Entry{}) {
			t.Fatalf("Resolve(%q) = (%+v, %s), want zero entry and none", name, entry, kind)
		}
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	snap := NewSnapshot(seasonEntries(), nil)

	first, firstKind := snap.Resolve("nico")
	second, secondKind := snap.Resolve("nico")
	if first != second || firstKind != secondKind {
		t.Fatal("repeated resolution must return the identical result")
	}
}

func TestSnapshotEntriesOrdered(t *testing.T) {
	snap := NewSnapshot(seasonEntries(), nil)
	entries := snap.Entries()
	if len(entries) != 4 {
		t.Fatalf("got %d entries, want 4", len(entries))
	}
	if entries[0].Name != "Antonio Gámez Paniagua" {
		t.Fatalf("first entry = %q, want Antonio Gámez Paniagua", entries[0].Name)
	}
}

func TestEmptySnapshotDistinctFromNoMatch(t *testing.T) {
	snap := NewSnapshot(nil, nil)
	if snap.Len() != 0 {
		t.Fatalf("empty snapshot has %d entries", snap.Len())
	}
	if _, kind := snap.Resolve("cualquiera"); kind != MatchNone {
		t.Fatalf("kind = %s, want none", kind)
	}
}
