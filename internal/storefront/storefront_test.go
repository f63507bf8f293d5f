package storefront

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wichananm65/kriuke-snack/internal/cart"
	"github.com/wichananm65/kriuke-snack/internal/config"
	"github.com/wichananm65/kriuke-snack/internal/navigation"
	"github.com/wichananm65/kriuke-snack/internal/notice"
	"github.com/wichananm65/kriuke-snack/internal/order"
	"github.com/wichananm65/kriuke-snack/internal/store"
	"github.com/wichananm65/kriuke-snack/internal/user"
)

type stubTimer struct{}

func (stubTimer) Stop() bool { return true }

type frozenClock struct{}

func (frozenClock) AfterFunc(time.Duration, func()) notice.Timer { return stubTimer{} }

func newApp(t *testing.T) *App {
	t.Helper()
	cfg := config.Load()
	cfg.Kafka.Brokers = nil
	app, err := New(store.NewMemoryKV(), cfg, nil, Options{Clock: frozenClock{}})
	require.NoError(t, err)
	t.Cleanup(func() { app.Close() })
	return app
}

// Cart total example: one product at 25000, added then incremented.
func TestEndToEnd_CartTotal(t *testing.T) {
	ctx := context.Background()
	app := newApp(t)

	_, err := app.Cart.Add(ctx, "p1")
	require.NoError(t, err)
	summary, err := app.Cart.ChangeQuantity(ctx, "p1", 1)
	require.NoError(t, err)
	assert.Equal(t, 50000, summary.Total)
	assert.Equal(t, cart.MsgAdded, app.Toast.Current().Message)
}

func TestEndToEnd_AdminFlow(t *testing.T) {
	ctx := context.Background()
	app := newApp(t)

	app.Router.Navigate(ctx, navigation.PageAdmin)
	assert.Equal(t, navigation.PageLogin, app.Router.View(ctx).Page)

	_, err := app.Users.Login(ctx, user.Credentials{Username: "arjune", Password: config.DefaultAdminPassword})
	require.NoError(t, err)
	assert.Equal(t, navigation.PageAdmin, app.Router.View(ctx).Page)

	_, err = app.Cart.Add(ctx, "p4")
	require.NoError(t, err)
	_, err = app.Favorites.Toggle(ctx, "p4")
	require.NoError(t, err)

	require.NoError(t, app.Router.OpenModal(navigation.ConfirmDeleteProduct{ProductID: "p4"}))
	require.NoError(t, app.Admin.ConfirmOpen(ctx))
	assert.Empty(t, app.Cart.Get(ctx).Items)
	assert.Empty(t, app.Favorites.IDs(ctx))

	require.NoError(t, app.Users.Logout(ctx))
	assert.Equal(t, navigation.PageLogin, app.Router.View(ctx).Page)
}

func TestEndToEnd_Checkout(t *testing.T) {
	ctx := context.Background()
	app := newApp(t)

	_, err := app.Cart.Add(ctx, "p2")
	require.NoError(t, err)
	o, err := app.Orders.Submit(ctx, order.Customer{Name: "Rina", Phone: "0812", Address: "Jl. Mawar 1"})
	require.NoError(t, err)

	assert.Equal(t, 20000, o.Total)
	assert.Contains(t, o.WhatsAppURL, "https://wa.me/"+app.Config.Shop.WhatsApp+"?text=")
	assert.Equal(t, order.MsgSubmitted, app.Toast.Current().Message)
	assert.Zero(t, app.Cart.Get(ctx).Count)
}
