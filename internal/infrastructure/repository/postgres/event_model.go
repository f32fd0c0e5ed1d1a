package postgres

import (
	"database/sql"
	"time"
)

type eventTableModel struct {
	ID          int64         `db:"id"`
	PublicID    string        `db:"public_id"`
	MatchID     string        `db:"match_public_id"`
	PlayerID    string        `db:"player_public_id"`
	PlayerName  string        `db:"player_name"`
	Minute      sql.NullInt64 `db:"minute"`
	EventType   string        `db:"event_type"`
	Result      string        `db:"result"`
	Zone        string        `db:"zone"`
	Third       string        `db:"third"`
	Observation string        `db:"observation"`
	Provenance  string        `db:"provenance"`
	CreatedAt   time.Time     `db:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at"`
	DeletedAt   *time.Time    `db:"deleted_at"`
}

type eventInsertModel struct {
	PublicID    string        `db:"public_id"`
	MatchID     string        `db:"match_public_id"`
	PlayerID    string        `db:"player_public_id"`
	PlayerName  string        `db:"player_name"`
	Minute      sql.NullInt64 `db:"minute"`
	EventType   string        `db:"event_type"`
	Result      string        `db:"result"`
	Zone        string        `db:"zone"`
	Third       string        `db:"third"`
	Observation string        `db:"observation"`
	Provenance  string        `db:"provenance"`
}
