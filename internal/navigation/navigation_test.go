package navigation

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSession struct{ loggedIn bool }

func (f *fakeSession) Get(context.Context) bool { return f.loggedIn }

func TestNavigate_AdminGate(t *testing.T) {
	ctx := context.Background()
	sess := &fakeSession{}
	r := NewRouter(sess)

	assert.Equal(t, PageAdmin, r.Navigate(ctx, PageAdmin))
	assert.Equal(t, PageLogin, r.View(ctx).Page)
	assert.Equal(t, PageAdmin, r.View(ctx).Requested)

	sess.loggedIn = true
	assert.Equal(t, PageAdmin, r.View(ctx).Page)
	assert.Equal(t, PageAdmin, r.Navigate(ctx, PageLogin))

	assert.Equal(t, PageCart, r.Navigate(ctx, PageCart))
}

func TestNavigate_ResetsScrollAndMenu(t *testing.T) {
	ctx := context.Background()
	r := NewRouter(&fakeSession{})
	resets := 0
	r.OnScrollReset(func() { resets++ })

	require.True(t, r.ToggleMenu())
	r.ShowDetail(ctx, "p3")

	st := r.View(ctx)
	assert.Equal(t, PageDetail, st.Page)
	assert.Equal(t, "p3", st.SelectedProductID)
	assert.False(t, st.MenuOpen)
	assert.Equal(t, uint64(1), st.ScrollGeneration)
	assert.Equal(t, 1, resets)
}

func TestModal(t *testing.T) {
	r := NewRouter(&fakeSession{})

	assert.ErrorIs(t, r.OpenModal(ConfirmDeleteProduct{}), ErrNoTarget)
	assert.Equal(t, NoModal{}, r.Modal())

	require.NoError(t, r.OpenModal(ConfirmDeleteCategory{Name: "Manis"}))
	st := Describe(r.Modal())
	assert.Equal(t, "confirm-delete-category", st.Kind)
	assert.Equal(t, "Manis", st.Target)

	require.NoError(t, r.OpenModal(nil))
	assert.Equal(t, NoModal{}, r.Modal())

	_, err := ParseModal("explode", "")
	assert.Error(t, err)
}

func TestParsePage(t *testing.T) {
	p, err := ParsePage("checkout")
	require.NoError(t, err)
	assert.Equal(t, PageCheckout, p)

	_, err = ParsePage("settings")
	assert.Error(t, err)
}

func TestViewRoutes(t *testing.T) {
	r := NewRouter(&fakeSession{})
	app := fiber.New()
	h := NewHandler(r, nil)
	h.RegisterPublicRoutes(app)
	h.RegisterProtectedRoutes(app)

	req := httptest.NewRequest("POST", "/api/v1/view/navigate", strings.NewReader(`{"page":"admin"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("navigate request failed: %v", err)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), `"page":"login"`) {
		t.Fatalf("expected login view without session, got %s", b)
	}

	req2 := httptest.NewRequest("POST", "/api/v1/view/navigate", strings.NewReader(`{"page":"nowhere"}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for unknown page, got %d", res2.StatusCode)
	}

	res3, _ := app.Test(httptest.NewRequest("POST", "/api/v1/view/admin/edit/p2", nil))
	b3, _ := io.ReadAll(res3.Body)
	if !strings.Contains(string(b3), `"editingId":"p2"`) {
		t.Fatalf("expected edit view for p2, got %s", b3)
	}
}
