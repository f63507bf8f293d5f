package cart

import (
	"context"

	"github.com/wichananm65/kriuke-snack/internal/store"
)

// Repository reads and replaces the whole cart.
type Repository interface {
	Get(ctx context.Context) []Item
	Set(ctx context.Context, items []Item) error
}

func NewRepository(st *store.Store) *store.Slice[[]Item] {
	return store.NewSlice(st, store.KeyCart, func() []Item { return []Item{} })
}
