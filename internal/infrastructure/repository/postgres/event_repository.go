package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/webstats/matchstats/internal/domain/event"
	qb "github.com/webstats/matchstats/internal/platform/querybuilder"
)

type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) ListSeason(ctx context.Context) ([]event.Event, error) {
	query, args, err := qb.Select("*").From("match_events").
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select season events query: %w", err)
	}

	var rows []eventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select season events: %w", err)
	}

	return eventsFromRows(rows), nil
}

func (r *EventRepository) ListByMatch(ctx context.Context, matchID string) ([]event.Event, error) {
	query, args, err := qb.Select("*").From("match_events").
		Where(
			qb.Eq("match_public_id", matchID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select match events query: %w", err)
	}

	var rows []eventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select match events: %w", err)
	}

	return eventsFromRows(rows), nil
}

func (r *EventRepository) Append(ctx context.Context, e event.Event) error {
	if err := e.Validate(); err != nil {
		return err
	}

	insert := eventInsertModel{
		PublicID:    e.ID,
		MatchID:     e.MatchID,
		PlayerID:    e.PlayerID,
		PlayerName:  e.PlayerName,
		Minute:      intPtrToNullInt64(e.Minute),
		EventType:   e.Type,
		Result:      e.Result,
		Zone:        e.Zone,
		Third:       e.Third,
		Observation: e.Observation,
		Provenance:  string(e.Provenance),
	}
	query, args, err := qb.InsertModel("match_events", insert, "")
	if err != nil {
		return fmt.Errorf("build insert event query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert event %s: %w", e.ID, err)
	}

	return nil
}

func (r *EventRepository) FinalizeMatch(ctx context.Context, matchID string) (int, error) {
	query, args, err := qb.Update("match_events").
		Set("provenance", string(event.ProvenanceFinalized)).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("match_public_id", matchID),
			qb.Eq("provenance", string(event.ProvenanceLive)),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build finalize match query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("finalize match %s: %w", matchID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count finalized events: %w", err)
	}

	return int(affected), nil
}

func eventsFromRows(rows []eventTableModel) []event.Event {
	out := make([]event.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, event.Event{
			ID:          row.PublicID,
			MatchID:     row.MatchID,
			PlayerID:    row.PlayerID,
			PlayerName:  row.PlayerName,
			Minute:      nullInt64ToIntPtr(row.Minute),
			Type:        row.EventType,
			Result:      row.Result,
			Zone:        row.Zone,
			Third:       row.Third,
			Observation: row.Observation,
			Provenance:  event.Provenance(row.Provenance),
		})
	}

	return out
}
