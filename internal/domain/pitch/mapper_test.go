package pitch

import "testing"

func TestGridShape(t *testing.T) {
	cells := Grid()
	if len(cells) != 9 {
		t.Fatalf("grid has %d cells, want 9", len(cells))
	}
	if cells[0].Zone != "Defensa Izquierda" {
		t.Fatalf("first cell = %s, want Defensa Izquierda", cells[0].Zone)
	}
	if cells[8].Zone != "Ataque Derecha" {
		t.Fatalf("last cell = %s, want Ataque Derecha", cells[8].Zone)
	}

	// Sections cover the full length, lanes the full width.
	if cells[0].LeftPct != 0 || cells[8].LeftPct+cells[8].WidthPct != 100 {
		t.Fatal("sections must span 0-100%")
	}
	if cells[0].TopPct != 0 || cells[2].TopPct+cells[2].HeightPct != 100 {
		t.Fatal("lanes must span 0-100%")
	}

	// Grid returns a copy.
	cells[0].Label = "mutated"
	if Grid()[0].Label == "mutated" {
		t.Fatal("Grid must return an independent copy")
	}
}

func TestMapZone(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		want     Zone
		wantHit  bool
	}{
		{"exact", "Defensa Izquierda", "Defensa Izquierda", true},
		{"synonym", "lateral derecho", "Defensa Derecha", true},
		{"accented", "Construcción medio centro", "Medio Centro", true},
		{"longest phrase wins", "defensa central", "Defensa Centro", true},
		{"bare central", "central", "Defensa Centro", true},
		{"attacking synonym", "media punta", "Ataque Centro", true},
		{"typo fallback", "delanztero", "Ataque Centro", true},
		{"empty", "", "", false},
		{"unknown", "zona desconocida", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := MapZone(tc.raw)
			if ok != tc.wantHit || got != tc.want {
				t.Fatalf("MapZone(%q) = (%s, %v), want (%s, %v)", tc.raw, got, ok, tc.want, tc.wantHit)
			}
		})
	}
}

func TestMapZonePrefersLongestPhrase(t *testing.T) {
	// Text containing both "central" and "defensa central" must resolve
	// through the longer phrase, never the shorter one first.
	got, ok := MapZone("zona defensa central del campo")
	if !ok || got != "Defensa Centro" {
		t.Fatalf("got (%s, %v), want (Defensa Centro, true)", got, ok)
	}

	got, ok = MapZone("extremo izquierdo en ataque")
	if !ok || got != "Ataque Izquierda" {
		t.Fatalf("got (%s, %v), want (Ataque Izquierda, true)", got, ok)
	}
}

func TestMapThird(t *testing.T) {
	tests := []struct {
		raw     string
		want    Third
		wantHit bool
	}{
		{"Ataque", ThirdAttack, true},
		{"finalización", ThirdAttack, true},
		{"salida de propia", ThirdDefense, true},
		{"zona defensiva", ThirdDefense, true},
		{"construcción", ThirdBuildUp, true},
		{"progresión con control", ThirdBuildUp, true},
		{"", "", false},
		{"sin tercio", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			got, ok := MapThird(tc.raw)
			if ok != tc.wantHit || got != tc.want {
				t.Fatalf("MapThird(%q) = (%s, %v), want (%s, %v)", tc.raw, got, ok, tc.want, tc.wantHit)
			}
		})
	}
}

func TestThirdFromZone(t *testing.T) {
	tests := []struct {
		zone    string
		want    Third
		wantHit bool
	}{
		{"Defensa Izquierda", ThirdDefense, true},
		{"Medio Centro", ThirdBuildUp, true},
		{"Ataque Derecha", ThirdAttack, true},
		{"", "", false},
		{"banquillo", "", false},
	}

	for _, tc := range tests {
		got, ok := ThirdFromZone(tc.zone)
		if ok != tc.wantHit || got != tc.want {
			t.Fatalf("ThirdFromZone(%q) = (%s, %v), want (%s, %v)", tc.zone, got, ok, tc.want, tc.wantHit)
		}
	}
}

func TestMapPosition(t *testing.T) {
	tests := []struct {
		name     string
		position string
		zone     string
		want     Zone
		wantHit  bool
	}{
		{"declared position", "Delantero Centro", "", "Ataque Centro", true},
		{"zone fallback", "", "medio derecho", "Medio Derecho", true},
		{"bare lane", "izquierda", "", "Defensa Izquierda", true},
		{"longer phrase wins across fields", "pivote", "izquierda", "Defensa Izquierda", true},
		{"nothing", "", "", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := MapPosition(tc.position, tc.zone)
			if ok != tc.wantHit || got != tc.want {
				t.Fatalf("MapPosition(%q, %q) = (%s, %v), want (%s, %v)", tc.position, tc.zone, got, ok, tc.want, tc.wantHit)
			}
		})
	}
}

func TestThirdsOrder(t *testing.T) {
	thirds := Thirds()
	want := []Third{ThirdAttack, ThirdBuildUp, ThirdDefense}
	if len(thirds) != len(want) {
		t.Fatalf("got %d thirds, want %d", len(thirds), len(want))
	}
	for i := range want {
		if thirds[i] != want[i] {
			t.Fatalf("thirds[%d] = %s, want %s", i, thirds[i], want[i])
		}
	}
}
