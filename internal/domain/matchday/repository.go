package matchday

import "context"

// Repository exposes fixture reads.
type Repository interface {
	List(ctx context.Context) ([]Match, error)
	Get(ctx context.Context, matchID string) (Match, bool, error)
}
