package roster

import "context"

// Repository exposes the season roster rows owned by the upstream
// importer.
type Repository interface {
	List(ctx context.Context) ([]Entry, error)
}
