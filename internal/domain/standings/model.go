package standings

import "context"

// Row represents one league table entry for the primary team's group,
// imported upstream and read-only to the engine.
type Row struct {
	Position       int
	Team           string
	Played         int
	Wins           int
	Draws          int
	Losses         int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
}

// EffectivePoints returns the stored points, deriving 3W+D when the
// imported table carried no points column.
func (r Row) EffectivePoints() int {
	if r.Points > 0 {
		return r.Points
	}
	return r.Wins*3 + r.Draws
}

// Repository exposes the league table ordered by position.
type Repository interface {
	List(ctx context.Context) ([]Row, error)
}
