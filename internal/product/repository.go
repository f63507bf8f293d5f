package product

import (
	"context"

	"github.com/wichananm65/kriuke-snack/internal/store"
)

// Repository reads and replaces the whole product list.
type Repository interface {
	Get(ctx context.Context) []Product
	Set(ctx context.Context, products []Product) error
}

// NewRepository returns the store-backed product list, seeded from Seed.
func NewRepository(st *store.Store) *store.Slice[[]Product] {
	return store.NewSlice(st, store.KeyProducts, Seed)
}
