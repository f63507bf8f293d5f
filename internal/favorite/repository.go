package favorite

import (
	"context"

	"github.com/wichananm65/kriuke-snack/internal/store"
)

// Repository reads and replaces the liked product ids.
type Repository interface {
	Get(ctx context.Context) []string
	Set(ctx context.Context, ids []string) error
}

func NewRepository(st *store.Store) *store.Slice[[]string] {
	return store.NewSlice(st, store.KeyLiked, func() []string { return []string{} })
}
