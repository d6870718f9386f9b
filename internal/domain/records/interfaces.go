package records

import "context"

// Source supplies the record collection the engine queries over. Sources
// are read-only collaborators: a fixture file during development, a fetch
// layer in production. Implementations validate records at the boundary so
// the engine can assume well-formed input.
type Source interface {
	Load(ctx context.Context) ([]Record, error)
}
