// Package whatsapp builds wa.me deep links with pre-filled messages.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/wichananm65/kriuke-snack/internal/product"
)

const DefaultNumber = "6282349786916"

// componentUnescaper turns url.QueryEscape output into encodeURIComponent
// output: spaces as %20 and the marks !'()* left literal.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeComponent percent-encodes s for use inside a query value, leaving
// letters, digits and -_.!~*'() as they are.
func EncodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

// ChatURL opens a chat with number and no message.
func ChatURL(number string) string {
	return "https://wa.me/" + number
}

// Link opens a chat with number and text pre-filled.
func Link(number, text string) string {
	return ChatURL(number) + "?text=" + EncodeComponent(text)
}

// EnquiryMessage asks about a product at its effective price.
func EnquiryMessage(p product.Product) string {
	return fmt.Sprintf("Halo Kriuké Snack, saya ingin menanyakan tentang produk *%s* (%s).",
		p.Name, product.PriceLabel(p.EffectivePrice()))
}

// BuyNowMessage orders one unit of a product.
func BuyNowMessage(p product.Product) string {
	return fmt.Sprintf("Halo Kriuké Snack, saya ingin memesan 1x *%s* (%s). Mohon konfirmasi pesanan saya. Terima kasih!",
		p.Name, product.PriceLabel(p.EffectivePrice()))
}
