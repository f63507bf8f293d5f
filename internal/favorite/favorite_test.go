package favorite

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wichananm65/kriuke-snack/internal/product"
	"github.com/wichananm65/kriuke-snack/internal/store"
)

type recorder struct{ messages []string }

func (r *recorder) Show(m string) { r.messages = append(r.messages, m) }

func TestToggle_TwiceRestores(t *testing.T) {
	start := []string{"p2", "p5"}

	once, added := Toggle(start, "p1")
	assert.True(t, added)
	assert.Equal(t, []string{"p2", "p5", "p1"}, once)

	twice, added := Toggle(once, "p1")
	assert.False(t, added)
	assert.ElementsMatch(t, start, twice)
}

func TestProducts_CatalogOrderAndDangling(t *testing.T) {
	got := Products([]string{"p5", "ghost", "p1"}, product.Seed())
	require.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, "p5", got[1].ID)
}

func newService(t *testing.T) (*Service, *recorder, Repository) {
	t.Helper()
	st := store.New(store.NewMemoryKV(), nil)
	rec := &recorder{}
	repo := NewRepository(st)
	return NewService(st, repo, product.NewRepository(st), rec), rec, repo
}

func TestService_ToggleNotices(t *testing.T) {
	ctx := context.Background()
	svc, rec, _ := newService(t)

	added, err := svc.Toggle(ctx, "p3")
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, svc.IsLiked(ctx, "p3"))

	added, err = svc.Toggle(ctx, "p3")
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, []string{MsgAdded, MsgRemoved}, rec.messages)
}

func TestService_StaleIDCanBeRemoved(t *testing.T) {
	ctx := context.Background()
	svc, _, repo := newService(t)
	require.NoError(t, repo.Set(ctx, []string{"ghost"}))

	_, err := svc.Toggle(ctx, "ghost")
	require.NoError(t, err)
	assert.Empty(t, svc.IDs(ctx))

	_, err = svc.Toggle(ctx, "ghost")
	assert.ErrorIs(t, err, product.ErrNotFound)
}

func TestFavoriteRoutes(t *testing.T) {
	svc, _, _ := newService(t)
	app := fiber.New()
	NewHandler(svc).RegisterPublicRoutes(app)

	res, err := app.Test(httptest.NewRequest("POST", "/api/v1/favorites/p2/toggle", nil))
	if err != nil {
		t.Fatalf("toggle request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	res2, _ := app.Test(httptest.NewRequest("GET", "/api/v1/favorites", nil))
	b, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(b), `"ids":["p2"]`) {
		t.Fatalf("expected p2 in favorites, got %s", b)
	}

	res3, _ := app.Test(httptest.NewRequest("POST", "/api/v1/favorites/nope/toggle", nil))
	if res3.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown product, got %d", res3.StatusCode)
	}
}
