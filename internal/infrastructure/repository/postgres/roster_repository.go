package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/webstats/matchstats/internal/domain/roster"
	qb "github.com/webstats/matchstats/internal/platform/querybuilder"
)

type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

func (r *RosterRepository) List(ctx context.Context) ([]roster.Entry, error) {
	query, args, err := qb.Select("*").From("roster_entries").
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select roster query: %w", err)
	}

	var rows []rosterTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select roster: %w", err)
	}

	out := make([]roster.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, roster.Entry{
			Name:        row.Name,
			Position:    row.Position,
			Age:         row.Age,
			CallUps:     row.CallUps,
			Appearances: row.Appearances,
			Starts:      row.Starts,
			Minutes:     row.Minutes,
			Goals:       row.Goals,
			YellowCards: row.YellowCards,
			RedCards:    row.RedCards,
			Assists:     row.Assists,
		})
	}

	return out, nil
}
