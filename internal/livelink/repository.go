package livelink

import (
	"context"

	"github.com/wichananm65/kriuke-snack/internal/store"
)

type Repository interface {
	Get(ctx context.Context) Links
	Set(ctx context.Context, links Links) error
}

func NewRepository(st *store.Store) *store.Slice[Links] {
	return store.NewSlice(st, store.KeyLiveLinks, Default)
}
