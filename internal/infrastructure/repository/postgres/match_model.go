package postgres

import (
	"database/sql"
	"time"
)

type matchTableModel struct {
	ID        int64        `db:"id"`
	PublicID  string       `db:"public_id"`
	MatchDate sql.NullTime `db:"match_date"`
	Round     string       `db:"round"`
	IsHome    bool         `db:"is_home"`
	Opponent  string       `db:"opponent"`
	Location  string       `db:"location"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
	DeletedAt *time.Time   `db:"deleted_at"`
}
