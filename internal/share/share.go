// Package share builds the product share sheet and the copy-link action.
package share

import (
	"fmt"

	"github.com/wichananm65/kriuke-snack/internal/product"
	"github.com/wichananm65/kriuke-snack/internal/whatsapp"
)

const (
	MsgCopied     = "Link produk berhasil disalin!"
	MsgCopyFailed = "Gagal menyalin link."
)

// Option is one entry of the share sheet.
type Option struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Sheet is everything the share overlay needs for one product.
type Sheet struct {
	ProductID  string   `json:"productId"`
	ProductURL string   `json:"productUrl"`
	Text       string   `json:"text"`
	Options    []Option `json:"options"`
}

// ProductURL is the canonical address of a product on the storefront.
func ProductURL(base, id string) string {
	return base + "?product=" + id
}

func Text(p product.Product) string {
	return fmt.Sprintf("Lihat snack Kriuké yang enak ini: %s!", p.Name)
}

func NewSheet(base string, p product.Product) Sheet {
	link := ProductURL(base, p.ID)
	text := Text(p)
	enc := whatsapp.EncodeComponent
	return Sheet{
		ProductID:  p.ID,
		ProductURL: link,
		Text:       text,
		Options: []Option{
			{Name: "WhatsApp", URL: "https://api.whatsapp.com/send?text=" + enc(text+" "+link)},
			{Name: "Facebook", URL: "https://www.facebook.com/sharer/sharer.php?u=" + enc(link)},
			{Name: "Twitter", URL: "https://twitter.com/intent/tweet?url=" + enc(link) + "&text=" + enc(text)},
			{Name: "Email", URL: "mailto:?subject=" + enc(text) + "&body=" + enc("Cek produk ini: "+link)},
		},
	}
}
