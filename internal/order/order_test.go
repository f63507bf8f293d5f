package order

import (
	"context"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wichananm65/kriuke-snack/internal/cart"
	"github.com/wichananm65/kriuke-snack/internal/events"
	"github.com/wichananm65/kriuke-snack/internal/navigation"
	"github.com/wichananm65/kriuke-snack/internal/product"
	"github.com/wichananm65/kriuke-snack/internal/store"
)

type recorder struct{ messages []string }

func (r *recorder) Show(m string) { r.messages = append(r.messages, m) }

type capturePublisher struct {
	keys []string
	envs []events.Envelope
}

func (c *capturePublisher) Publish(_ context.Context, key string, env events.Envelope) error {
	c.keys = append(c.keys, key)
	c.envs = append(c.envs, env)
	return nil
}

type fakeSession struct{}

func (fakeSession) Get(context.Context) bool { return false }

type fixture struct {
	svc    *Service
	rec    *recorder
	pub    *capturePublisher
	cart   cart.Repository
	router *navigation.Router
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	st := store.New(store.NewMemoryKV(), nil)
	rec := &recorder{}
	pub := &capturePublisher{}
	cartRepo := cart.NewRepository(st)
	router := navigation.NewRouter(fakeSession{})
	svc := NewService(Deps{
		Lock:      st,
		Cart:      cartRepo,
		Products:  product.NewRepository(st),
		Navigator: router,
		Notifier:  rec,
		Publisher: pub,
		Producer:  "kriuke-storefront",
	})
	return fixture{svc: svc, rec: rec, pub: pub, cart: cartRepo, router: router}
}

func TestMessage(t *testing.T) {
	p := product.Product{ID: "p1", Name: "kripik pisang rasa original", OriginalPrice: 25000}
	lines := []cart.Line{{Product: p, Quantity: 2, UnitPrice: 25000, Subtotal: 50000}}
	c := Customer{Name: "Rina", Phone: "0812", Address: "Jl. Mawar 1", Notes: "Pagi"}

	want := "Halo Kriuké Snack, saya mau pesan:\n\n" +
		"--- *Data Pengiriman* ---\n" +
		"Nama: *Rina*\n" +
		"No. WhatsApp: *0812*\n" +
		"Alamat: *Jl. Mawar 1*\n" +
		"Catatan: *Pagi*\n" +
		"\n--- *Detail Pesanan* ---\n" +
		"*kripik pisang rasa original*\n" +
		"Jumlah: 2 pcs\n" +
		"Subtotal: Rp50.000\n\n" +
		"*Total Pesanan: Rp50.000*\n\n" +
		"Mohon konfirmasi pesanan saya. Terima kasih!"
	assert.Equal(t, want, Message(c, lines, 50000))

	c.Notes = ""
	assert.NotContains(t, Message(c, lines, 50000), "Catatan")
}

func TestCustomer_Normalize(t *testing.T) {
	_, err := Customer{Name: "  ", Phone: "0812", Address: "x"}.Normalize()
	assert.ErrorIs(t, err, ErrMissingFields)

	c, err := Customer{Name: " Rina ", Phone: "0812", Address: " Jl. Mawar "}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, "Rina", c.Name)
	assert.Equal(t, "Jl. Mawar", c.Address)
}

func TestSubmit_ClearsCartAndPublishes(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	require.NoError(t, fx.cart.Set(ctx, []cart.Item{{ID: "p1", Quantity: 2}, {ID: "gone", Quantity: 5}}))
	fx.router.Navigate(ctx, navigation.PageCheckout)

	o, err := fx.svc.Submit(ctx, Customer{Name: "Rina", Phone: "0812", Address: "Jl. Mawar 1"})
	require.NoError(t, err)

	assert.Equal(t, 50000, o.Total)
	require.Len(t, o.Lines, 1)
	u, err := url.Parse(o.WhatsAppURL)
	require.NoError(t, err)
	assert.Equal(t, o.Message, u.Query().Get("text"))

	assert.Empty(t, fx.cart.Get(ctx))
	assert.Equal(t, navigation.PageHome, fx.router.View(ctx).Page)
	assert.Equal(t, []string{MsgSubmitted}, fx.rec.messages)

	require.Len(t, fx.pub.envs, 1)
	assert.Equal(t, o.Reference, fx.pub.keys[0])
	got, err := events.UnwrapPayload[SubmittedPayload](fx.pub.envs[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, 50000, got.Total)
}

func TestSubmit_RejectsWithoutMutation(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)

	_, err := fx.svc.Submit(ctx, Customer{Name: "Rina", Phone: "0812", Address: "Jl. Mawar 1"})
	assert.ErrorIs(t, err, ErrEmptyCart)

	require.NoError(t, fx.cart.Set(ctx, []cart.Item{{ID: "p1", Quantity: 1}}))
	_, err = fx.svc.Submit(ctx, Customer{Name: "Rina"})
	assert.ErrorIs(t, err, ErrMissingFields)
	assert.Len(t, fx.cart.Get(ctx), 1)
	assert.Empty(t, fx.rec.messages)
	assert.Empty(t, fx.pub.envs)
}

func TestCheckoutRoute(t *testing.T) {
	fx := newFixture(t)
	app := fiber.New()
	NewHandler(fx.svc).RegisterPublicRoutes(app)

	req := httptest.NewRequest("POST", "/api/v1/checkout", strings.NewReader(`{"name":"Rina","wa":"","address":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("checkout request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}

	require.NoError(t, fx.cart.Set(context.Background(), []cart.Item{{ID: "p2", Quantity: 1}}))
	req2 := httptest.NewRequest("POST", "/api/v1/checkout", strings.NewReader(`{"name":"Rina","wa":"0812","address":"x"}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res2.StatusCode)
	}
}
