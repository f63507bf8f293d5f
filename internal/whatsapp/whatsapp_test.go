package whatsapp

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wichananm65/kriuke-snack/internal/product"
)

func TestEncodeComponent(t *testing.T) {
	assert.Equal(t, "a%20b%0A*c*%26", EncodeComponent("a b\n*c*&"))
	assert.Equal(t, "Halo!%20(Rp1.000)%20'ok'~%2B%25", EncodeComponent("Halo! (Rp1.000) 'ok'~+%"))
}

func TestLink_RoundTrips(t *testing.T) {
	text := "Halo, saya mau pesan:\n*Keripik* 2 pcs"
	link := Link(DefaultNumber, text)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", u.Host)
	assert.Equal(t, "/"+DefaultNumber, u.Path)
	assert.Equal(t, text, u.Query().Get("text"))
}

func TestMessagesUseEffectivePrice(t *testing.T) {
	stale := 30000
	p := product.Product{Name: "Keripik Balado", OriginalPrice: 25000, DiscountPrice: &stale}

	assert.Equal(t,
		"Halo Kriuké Snack, saya ingin menanyakan tentang produk *Keripik Balado* (Rp25.000).",
		EnquiryMessage(p))
	assert.Equal(t,
		"Halo Kriuké Snack, saya ingin memesan 1x *Keripik Balado* (Rp25.000). Mohon konfirmasi pesanan saya. Terima kasih!",
		BuyNowMessage(p))
}
