package commands

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/wichananm65/kriuke-snack/internal/cart"
	"github.com/wichananm65/kriuke-snack/internal/order"
	"github.com/wichananm65/kriuke-snack/internal/config"
	"github.com/wichananm65/kriuke-snack/internal/product"
	"github.com/wichananm65/kriuke-snack/internal/user"
)

// run executes the CLI against a file store in dir. Flag variables are
// package level, so they are reset before every invocation.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	storeDriver, storeDir, dbURL, redisAddr = "", "", "", ""
	verbose, jsonOutput = false, false
	productCategory, productQuery = "", ""
	qtyDelta = 1
	customer = order.Customer{}
	exportOut = "produk.xlsx"
	credentials = user.Credentials{}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(append([]string{"--store", "file", "--store-dir", dir}, args...))
	err := rootCmd.Execute()
	return buf.String(), err
}

func login(t *testing.T, dir string) {
	t.Helper()
	_, err := run(t, dir, "login", "-u", "arjune", "-p", config.DefaultAdminPassword)
	require.NoError(t, err)
}

func TestAdminCommands_NeedLogin(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "products", "rm", "p1")
	assert.ErrorIs(t, err, errAdminOnly)
	_, err = run(t, dir, "categories", "rm", "Manis")
	assert.ErrorIs(t, err, errAdminOnly)
	_, err = run(t, dir, "snapshot")
	assert.ErrorIs(t, err, errAdminOnly)

	_, err = run(t, dir, "login", "-u", "arjune", "-p", "salah")
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	_, err = run(t, dir, "products", "rm", "p1")
	assert.ErrorIs(t, err, errAdminOnly)

	login(t, dir)
	out, err := run(t, dir, "products", "rm", "p1")
	require.NoError(t, err)
	assert.Contains(t, out, "Produk berhasil dihapus.")

	_, err = run(t, dir, "logout")
	require.NoError(t, err)
	_, err = run(t, dir, "products", "rm", "p2")
	assert.ErrorIs(t, err, errAdminOnly)
}

func TestProducts_JSON(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, dir, "products", "--json")
	require.NoError(t, err)

	var res product.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Len(t, res.Products, len(product.Seed()))
	assert.Empty(t, res.Empty)
}

func TestProducts_CategoryFilter(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, dir, "products", "--category", "Manis", "--json")
	require.NoError(t, err)

	var res product.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.NotEmpty(t, res.Products)
	for _, p := range res.Products {
		assert.Equal(t, "Manis", p.Category)
	}

	out, err = run(t, dir, "products", "--q", "tidak-ada-snack-ini")
	require.NoError(t, err)
	assert.Contains(t, out, "Produk tidak ditemukan.")
}

func TestCart_PersistsAcrossInvocations(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "cart", "add", "p1")
	require.NoError(t, err)
	out, err := run(t, dir, "cart", "add", "p1")
	require.NoError(t, err)
	assert.Contains(t, out, cart.MsgAdded)

	out, err = run(t, dir, "cart", "qty", "p1", "--by=-1", "--json")
	require.NoError(t, err)
	var sum cart.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &sum))
	assert.Equal(t, 1, sum.Count)

	out, err = run(t, dir, "cart", "rm", "p1")
	require.NoError(t, err)
	assert.Contains(t, out, "Keranjang belanja kosong.")
}

func TestCategories_DeleteReassigns(t *testing.T) {
	dir := t.TempDir()
	login(t, dir)

	_, err := run(t, dir, "categories", "add", "Asin")
	require.NoError(t, err)
	out, err := run(t, dir, "categories", "rm", "Manis")
	require.NoError(t, err)
	assert.Contains(t, out, `Kategori "Manis" dihapus.`)

	out, err = run(t, dir, "categories", "--json")
	require.NoError(t, err)
	var list []string
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	assert.Contains(t, list, "Asin")
	assert.NotContains(t, list, "Manis")

	_, err = run(t, dir, "categories", "rm", product.FallbackCategory)
	assert.Error(t, err)
}

func TestCheckout(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "checkout", "--name", "Budi", "--wa", "0812", "--address", "Jl. Mawar 1")
	assert.ErrorIs(t, err, order.ErrEmptyCart)

	_, err = run(t, dir, "cart", "add", "p1")
	require.NoError(t, err)

	_, err = run(t, dir, "checkout", "--name", "Budi")
	assert.ErrorIs(t, err, order.ErrMissingFields)

	out, err := run(t, dir, "checkout", "--name", "Budi", "--wa", "0812", "--address", "Jl. Mawar 1", "--json")
	require.NoError(t, err)
	var o order.Order
	require.NoError(t, json.Unmarshal([]byte(out), &o))
	assert.True(t, strings.HasPrefix(o.WhatsAppURL, "https://wa.me/"))
	assert.Greater(t, o.Total, 0)

	out, err = run(t, dir, "cart", "--json")
	require.NoError(t, err)
	var sum cart.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &sum))
	assert.Zero(t, sum.Count)
}

func TestExport_WritesWorkbook(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "katalog.xlsx")
	login(t, dir)

	_, err := run(t, dir, "export", "--out", path)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Produk")
	require.NoError(t, err)
	assert.Len(t, rows, len(product.Seed())+1)
}

func TestHashPassword(t *testing.T) {
	out, err := run(t, t.TempDir(), "hash-password", "rahasia")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "$2"))
}
