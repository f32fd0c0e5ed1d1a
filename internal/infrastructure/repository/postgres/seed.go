package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/webstats/matchstats/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo season into an empty database so a fresh
// deployment serves data immediately.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM matches WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count matches for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, m := range memory.SeedMatches() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO matches (public_id, match_date, round, is_home, opponent, location)
VALUES (:public_id, :match_date, :round, :is_home, :opponent, :location)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":  m.ID,
			"match_date": m.Date,
			"round":      m.Round,
			"is_home":    m.Home,
			"opponent":   m.Opponent,
			"location":   m.Location,
		})
		if err != nil {
			return fmt.Errorf("bind seed match %s query: %w", m.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed match %s: %w", m.ID, err)
		}
	}

	for _, entry := range memory.SeedRoster() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO roster_entries (name, position, age, call_ups, appearances, starts, minutes, goals, yellow_cards, red_cards, assists)
VALUES (:name, :position, :age, :call_ups, :appearances, :starts, :minutes, :goals, :yellow_cards, :red_cards, :assists)
ON CONFLICT (name) DO NOTHING`, map[string]any{
			"name":         entry.Name,
			"position":     entry.Position,
			"age":          entry.Age,
			"call_ups":     entry.CallUps,
			"appearances":  entry.Appearances,
			"starts":       entry.Starts,
			"minutes":      entry.Minutes,
			"goals":        entry.Goals,
			"yellow_cards": entry.YellowCards,
			"red_cards":    entry.RedCards,
			"assists":      entry.Assists,
		})
		if err != nil {
			return fmt.Errorf("bind seed roster entry %s query: %w", entry.Name, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed roster entry %s: %w", entry.Name, err)
		}
	}

	for _, e := range memory.SeedEvents() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO match_events (public_id, match_public_id, player_public_id, player_name, minute, event_type, result, zone, third, observation, provenance)
VALUES (:public_id, :match_public_id, :player_public_id, :player_name, :minute, :event_type, :result, :zone, :third, :observation, :provenance)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":        e.ID,
			"match_public_id":  e.MatchID,
			"player_public_id": e.PlayerID,
			"player_name":      e.PlayerName,
			"minute":           intPtrToNullInt64(e.Minute),
			"event_type":       e.Type,
			"result":           e.Result,
			"zone":             e.Zone,
			"third":            e.Third,
			"observation":      e.Observation,
			"provenance":       string(e.Provenance),
		})
		if err != nil {
			return fmt.Errorf("bind seed event %s query: %w", e.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed event %s: %w", e.ID, err)
		}
	}

	for _, row := range memory.SeedStandings() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO standings (position, team, played, wins, draws, losses, goals_for, goals_against, goal_difference, points)
VALUES (:position, :team, :played, :wins, :draws, :losses, :goals_for, :goals_against, :goal_difference, :points)
ON CONFLICT (team) DO NOTHING`, map[string]any{
			"position":        row.Position,
			"team":            row.Team,
			"played":          row.Played,
			"wins":            row.Wins,
			"draws":           row.Draws,
			"losses":          row.Losses,
			"goals_for":       row.GoalsFor,
			"goals_against":   row.GoalsAgainst,
			"goal_difference": row.GoalDifference,
			"points":          row.Points,
		})
		if err != nil {
			return fmt.Errorf("bind seed standing %s query: %w", row.Team, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed standing %s: %w", row.Team, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}
