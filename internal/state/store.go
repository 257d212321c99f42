package state

import "context"

// Store persists the two availability documents: ingredient stock flags
// and manual cocktail overrides, both keyed by English name. Documents
// are read whole and written whole; a toggle is a read-modify-write with
// no locking (single-admin usage, accepted lost-update window).
type Store interface {
	Ingredients(ctx context.Context) (map[string]bool, error)
	SaveIngredients(ctx context.Context, state map[string]bool) error

	Overrides(ctx context.Context) (map[string]bool, error)
	SaveOverrides(ctx context.Context, overrides map[string]bool) error
}
