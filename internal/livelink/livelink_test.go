package livelink

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wichananm65/kriuke-snack/internal/store"
)

type recorder struct{ messages []string }

func (r *recorder) Show(m string) { r.messages = append(r.messages, m) }

func TestService_DefaultsAndUpdate(t *testing.T) {
	ctx := context.Background()
	st := store.New(store.NewMemoryKV(), nil)
	rec := &recorder{}
	svc := NewService(NewRepository(st), rec)

	assert.Equal(t, Default(), svc.Get(ctx))

	got, err := svc.Update(ctx, Links{Tiktok: " https://tiktok.com/@x ", Shopee: "https://shopee.co.id/x"})
	require.NoError(t, err)
	assert.Equal(t, "https://tiktok.com/@x", got.Tiktok)
	assert.Equal(t, got, svc.Get(ctx))
	assert.Equal(t, []string{MsgUpdated}, rec.messages)
}

func TestService_RejectsEmptyLink(t *testing.T) {
	ctx := context.Background()
	st := store.New(store.NewMemoryKV(), nil)
	svc := NewService(NewRepository(st), nil)

	_, err := svc.Update(ctx, Links{Tiktok: "https://tiktok.com/@x", Shopee: "   "})
	assert.ErrorIs(t, err, ErrIncomplete)
	assert.Equal(t, Default(), svc.Get(ctx))
}

func TestLiveLinkRoutes(t *testing.T) {
	st := store.New(store.NewMemoryKV(), nil)
	h := NewHandler(NewService(NewRepository(st), nil))
	app := fiber.New()
	h.RegisterPublicRoutes(app)
	h.RegisterProtectedRoutes(app)

	req := httptest.NewRequest("PUT", "/api/v1/admin/live-links", strings.NewReader(`{"tiktok":"","shopee":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("update request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}

	res2, _ := app.Test(httptest.NewRequest("GET", "/api/v1/live-links", nil))
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res2.StatusCode)
	}
}
