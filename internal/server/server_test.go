package server

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/wichananm65/kriuke-snack/internal/config"
	"github.com/wichananm65/kriuke-snack/internal/notice"
	"github.com/wichananm65/kriuke-snack/internal/store"
	"github.com/wichananm65/kriuke-snack/internal/storefront"
)

type stubTimer struct{}

func (stubTimer) Stop() bool { return true }

type frozenClock struct{}

func (frozenClock) AfterFunc(time.Duration, func()) notice.Timer { return stubTimer{} }

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := config.Load()
	cfg.Kafka.Brokers = nil
	cfg.Admin.Username = "arjune"
	cfg.Admin.PasswordHash = ""
	cfg.JWT.Secret = "test-secret"
	sf, err := storefront.New(store.NewMemoryKV(), cfg, nil, storefront.Options{Clock: frozenClock{}})
	require.NoError(t, err)
	t.Cleanup(func() { sf.Close() })
	return New(sf)
}

func signIn(t *testing.T, app *fiber.App) string {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/v1/sign-in", strings.NewReader(`{"username":"arjune","password":"kriuke123"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 on sign-in, got %d", res.StatusCode)
	}
	var body struct {
		Token string `json:"token"`
	}
	b, _ := io.ReadAll(res.Body)
	require.NoError(t, json.Unmarshal(b, &body))
	return body.Token
}

func TestRoutesRegistered(t *testing.T) {
	app := newTestApp(t)
	routes := map[string]bool{}
	for _, grp := range app.Stack() {
		for _, r := range grp {
			routes[r.Method+" "+r.Path] = true
		}
	}
	for _, want := range []string{
		"GET /api/v1/products",
		"GET /api/v1/products/:id",
		"GET /api/v1/products/recommended",
		"POST /api/v1/cart",
		"POST /api/v1/favorites/:id/toggle",
		"POST /api/v1/checkout",
		"GET /api/v1/promos",
		"POST /api/v1/admin/products",
		"DELETE /api/v1/admin/categories/:name",
	} {
		if !routes[want] {
			t.Fatalf("expected route %q to be registered", want)
		}
	}
}

func TestPublicAndProtected(t *testing.T) {
	app := newTestApp(t)

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/products?category=Manis", nil))
	if err != nil {
		t.Fatalf("products request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for public catalog, got %d", res.StatusCode)
	}

	res2, _ := app.Test(httptest.NewRequest("GET", "/api/v1/admin/products", nil))
	if res2.StatusCode == fiber.StatusOK {
		t.Fatalf("expected admin listing to require a token")
	}

	token := signIn(t, app)
	req := httptest.NewRequest("GET", "/api/v1/admin/products", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res3, _ := app.Test(req)
	if res3.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 with token and session, got %d", res3.StatusCode)
	}

	out := httptest.NewRequest("POST", "/api/v1/sign-out", nil)
	out.Header.Set("Authorization", "Bearer "+token)
	res4, _ := app.Test(out)
	if res4.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 on sign-out, got %d", res4.StatusCode)
	}

	again := httptest.NewRequest("GET", "/api/v1/admin/products", nil)
	again.Header.Set("Authorization", "Bearer "+token)
	res5, _ := app.Test(again)
	if res5.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 after sign-out, got %d", res5.StatusCode)
	}
}

func TestAdminCreateThenCatalog(t *testing.T) {
	app := newTestApp(t)
	token := signIn(t, app)

	body := `{"name":"Keripik Tempe","category":"Gurih","originalPrice":15000,"hasDiscount":true,"discountPrice":"12000","images":"https://img/t.jpg"}`
	req := httptest.NewRequest("POST", "/api/v1/admin/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusCreated {
		b, _ := io.ReadAll(res.Body)
		t.Fatalf("expected 201, got %d: %s", res.StatusCode, b)
	}

	res2, _ := app.Test(httptest.NewRequest("GET", "/api/v1/products?q=tempe", nil))
	b2, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(b2), "Keripik Tempe") {
		t.Fatalf("expected new product in catalog search, got %s", b2)
	}

	bad := `{"name":"X","originalPrice":15000,"hasDiscount":true,"discountPrice":15000,"images":"https://img/x.jpg"}`
	req3 := httptest.NewRequest("POST", "/api/v1/admin/products", strings.NewReader(bad))
	req3.Header.Set("Content-Type", "application/json")
	req3.Header.Set("Authorization", "Bearer "+token)
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for discount not lower, got %d", res3.StatusCode)
	}
}

func TestRecommendedNotShadowedByDetail(t *testing.T) {
	app := newTestApp(t)

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/products/recommended?limit=3", nil))
	if err != nil {
		t.Fatalf("recommended request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var views []map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&views); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(views) != 3 {
		t.Fatalf("expected 3 best sellers, got %d", len(views))
	}
}
