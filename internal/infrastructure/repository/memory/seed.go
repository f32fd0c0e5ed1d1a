package memory

import (
	"time"

	"github.com/webstats/matchstats/internal/domain/event"
	"github.com/webstats/matchstats/internal/domain/matchday"
	"github.com/webstats/matchstats/internal/domain/roster"
	"github.com/webstats/matchstats/internal/domain/standings"
)

// Seed data for the default in-memory wiring: a small but representative
// slice of a season, enough to exercise every report.

const (
	MatchIDJornada1 = "match-j1"
	MatchIDJornada2 = "match-j2"
	MatchIDJornada3 = "match-j3"

	PlayerIDGamez   = "player-gamez"
	PlayerIDTorres  = "player-torres"
	PlayerIDVilalba = "player-villalba"
)

func seedDate(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func seedMinute(m int) *int {
	return &m
}

func SeedMatches() []matchday.Match {
	return []matchday.Match{
		{ID: MatchIDJornada1, Date: seedDate(2025, time.September, 14), Round: "Jornada 1", Home: true, Opponent: "CD Torremolinos B", Location: "Campo Municipal"},
		{ID: MatchIDJornada2, Date: seedDate(2025, time.September, 21), Round: "Jornada 2", Home: false, Opponent: "UD Rincón", Location: "La Cala"},
		{ID: MatchIDJornada3, Date: seedDate(2025, time.September, 28), Round: "Jornada 3", Home: true, Opponent: "Atlético Benamiel", Location: "Campo Municipal"},
	}
}

func SeedRoster() []roster.Entry {
	return []roster.Entry{
		{Name: "Antonio Gámez Paniagua", Position: "Delantero Centro", Age: 24, CallUps: 2, Appearances: 2, Starts: 2, Minutes: 180, Goals: 1},
		{Name: "Manuel Torres Palenzuela", Position: "Medio Centro", Age: 28, CallUps: 2, Appearances: 2, Starts: 1, Minutes: 120, Assists: 1},
		{Name: "Nicolás Villalba Alcaide", Position: "Defensa Central", Age: 21, CallUps: 2, Appearances: 2, Starts: 2, Minutes: 180, YellowCards: 1},
		{Name: "Victor Ruiz Postigo", Position: "Lateral Derecho", Age: 26, CallUps: 1, Appearances: 1, Starts: 1, Minutes: 90},
	}
}

func SeedEvents() []event.Event {
	return []event.Event{
		// Jornada 1, imported from the match workbook.
		{ID: "ev-seed-01", MatchID: MatchIDJornada1, PlayerID: PlayerIDGamez, PlayerName: "Antonio Gámez Paniagua", Minute: seedMinute(12), Type: "Disparo", Result: "OK", Zone: "Ataque Centro", Provenance: event.ProvenanceImported},
		{ID: "ev-seed-02", MatchID: MatchIDJornada1, PlayerID: PlayerIDGamez, PlayerName: "Antonio Gámez Paniagua", Minute: seedMinute(27), Type: "Gol", Result: "Marcado", Zone: "Ataque Centro", Provenance: event.ProvenanceImported},
		{ID: "ev-seed-03", MatchID: MatchIDJornada1, PlayerID: PlayerIDTorres, PlayerName: "Manuel Torres Palenzuela", Minute: seedMinute(26), Type: "Pase clave", Result: "Asistencia", Zone: "Medio Centro", Provenance: event.ProvenanceImported},
		{ID: "ev-seed-04", MatchID: MatchIDJornada1, PlayerID: PlayerIDVilalba, PlayerName: "Nicolás Villalba Alcaide", Minute: seedMinute(55), Type: "Duelo", Result: "Ganado", Zone: "Defensa Central", Provenance: event.ProvenanceImported},
		// Jornada 2, finalized live capture.
		{ID: "ev-seed-05", MatchID: MatchIDJornada2, PlayerID: PlayerIDTorres, PlayerName: "Manuel Torres Palenzuela", Minute: seedMinute(5), Type: "Entrada", Zone: "Sustitución", Result: "entrante", Provenance: event.ProvenanceFinalized},
		{ID: "ev-seed-06", MatchID: MatchIDJornada2, PlayerID: PlayerIDTorres, PlayerName: "Manuel Torres Palenzuela", Minute: seedMinute(40), Type: "Pase", Result: "OK", Zone: "Medio Derecho", Provenance: event.ProvenanceFinalized},
		{ID: "ev-seed-07", MatchID: MatchIDJornada2, PlayerID: PlayerIDTorres, PlayerName: "Manuel Torres Palenzuela", Minute: seedMinute(85), Type: "Salida", Zone: "Sustitución", Result: "saliente", Provenance: event.ProvenanceFinalized},
		{ID: "ev-seed-08", MatchID: MatchIDJornada2, PlayerID: PlayerIDVilalba, PlayerName: "Nicolás Villalba Alcaide", Minute: seedMinute(63), Type: "Falta cometida", Result: "Tarjeta amarilla", Zone: "Defensa Izquierda", Provenance: event.ProvenanceFinalized},
		{ID: "ev-seed-09", MatchID: MatchIDJornada2, PlayerID: PlayerIDGamez, PlayerName: "Antonio Gámez Paniagua", Minute: seedMinute(90), Type: "Remate", Result: "Fallado", Zone: "Ataque Izquierdo", Provenance: event.ProvenanceFinalized},
		// Jornada 3, still live.
		{ID: "ev-seed-10", MatchID: MatchIDJornada3, PlayerID: PlayerIDGamez, PlayerName: "Antonio Gámez Paniagua", Minute: seedMinute(8), Type: "Tiro", Result: "OK", Zone: "Ataque Centro", Provenance: event.ProvenanceLive},
		{ID: "ev-seed-11", MatchID: MatchIDJornada3, PlayerID: PlayerIDVilalba, PlayerName: "Nicolás Villalba Alcaide", Minute: seedMinute(30), Type: "Recuperación", Result: "Recuperado", Zone: "Defensa Central", Provenance: event.ProvenanceLive},
	}
}

func SeedStandings() []standings.Row {
	return []standings.Row{
		{Position: 1, Team: "UD RINCÓN", Played: 3, Wins: 3, GoalsFor: 8, GoalsAgainst: 2, GoalDifference: 6, Points: 9},
		{Position: 2, Team: "CD BENABALBÓN", Played: 3, Wins: 2, Draws: 1, GoalsFor: 6, GoalsAgainst: 3, GoalDifference: 3, Points: 7},
		{Position: 3, Team: "ATLÉTICO BENAMIEL", Played: 3, Wins: 1, Draws: 1, Losses: 1, GoalsFor: 4, GoalsAgainst: 4, Points: 4},
		{Position: 4, Team: "CD TORREMOLINOS B", Played: 3, Losses: 3, GoalsFor: 1, GoalsAgainst: 10, GoalDifference: -9},
	}
}
