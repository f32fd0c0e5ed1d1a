package postgres

import "time"

type rosterTableModel struct {
	ID          int64      `db:"id"`
	Name        string     `db:"name"`
	Position    string     `db:"position"`
	Age         int        `db:"age"`
	CallUps     int        `db:"call_ups"`
	Appearances int        `db:"appearances"`
	Starts      int        `db:"starts"`
	Minutes     int        `db:"minutes"`
	Goals       int        `db:"goals"`
	YellowCards int        `db:"yellow_cards"`
	RedCards    int        `db:"red_cards"`
	Assists     int        `db:"assists"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}
