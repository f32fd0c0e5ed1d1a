package postgres

import "time"

type standingTableModel struct {
	ID             int64      `db:"id"`
	Position       int        `db:"position"`
	Team           string     `db:"team"`
	Played         int        `db:"played"`
	Wins           int        `db:"wins"`
	Draws          int        `db:"draws"`
	Losses         int        `db:"losses"`
	GoalsFor       int        `db:"goals_for"`
	GoalsAgainst   int        `db:"goals_against"`
	GoalDifference int        `db:"goal_difference"`
	Points         int        `db:"points"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
}
