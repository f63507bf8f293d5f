package user

import (
	"context"

	"github.com/wichananm65/kriuke-snack/internal/store"
)

// SessionRepository persists the admin session flag.
type SessionRepository interface {
	Get(ctx context.Context) bool
	Set(ctx context.Context, loggedIn bool) error
}

func NewSessionRepository(st *store.Store) *store.Slice[bool] {
	return store.NewSlice(st, store.KeySession, func() bool { return false })
}
