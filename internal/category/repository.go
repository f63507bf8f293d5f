package category

import (
	"context"

	"github.com/wichananm65/kriuke-snack/internal/store"
)

type Repository interface {
	Get(ctx context.Context) []string
	Set(ctx context.Context, categories []string) error
}

func NewRepository(st *store.Store) *store.Slice[[]string] {
	return store.NewSlice(st, store.KeyCategories, Default)
}
