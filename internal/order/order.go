package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wichananm65/kriuke-snack/internal/cart"
	"github.com/wichananm65/kriuke-snack/internal/product"
)

const MsgSubmitted = "Pesanan Anda sedang diproses!"

var (
	ErrMissingFields = errors.New("Mohon lengkapi Nama, Nomor WhatsApp, dan Alamat Lengkap.")
	ErrEmptyCart     = errors.New("Keranjang belanja kosong.")
)

// Customer is the delivery data entered on the checkout page.
type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"wa"`
	Address string `json:"address"`
	Notes   string `json:"notes,omitempty"`
}

// Normalize trims every field and checks the required ones.
func (c Customer) Normalize() (Customer, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Address = strings.TrimSpace(c.Address)
	c.Notes = strings.TrimSpace(c.Notes)
	if c.Name == "" || c.Phone == "" || c.Address == "" {
		return c, ErrMissingFields
	}
	return c, nil
}

// Order is a submitted checkout. It is handed off to WhatsApp and not stored.
type Order struct {
	Reference   string      `json:"reference"`
	Customer    Customer    `json:"customer"`
	Lines       []cart.Line `json:"lines"`
	Total       int         `json:"total"`
	Message     string      `json:"message"`
	WhatsAppURL string      `json:"whatsappUrl"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// Message renders the order text sent to the shop.
func Message(c Customer, lines []cart.Line, total int) string {
	var b strings.Builder
	b.WriteString("Halo Kriuké Snack, saya mau pesan:\n\n")
	b.WriteString("--- *Data Pengiriman* ---\n")
	fmt.Fprintf(&b, "Nama: *%s*\n", c.Name)
	fmt.Fprintf(&b, "No. WhatsApp: *%s*\n", c.Phone)
	fmt.Fprintf(&b, "Alamat: *%s*\n", c.Address)
	if c.Notes != "" {
		fmt.Fprintf(&b, "Catatan: *%s*\n", c.Notes)
	}
	b.WriteString("\n--- *Detail Pesanan* ---\n")
	for _, l := range lines {
		fmt.Fprintf(&b, "*%s*\n", l.Product.Name)
		fmt.Fprintf(&b, "Jumlah: %d pcs\n", l.Quantity)
		fmt.Fprintf(&b, "Subtotal: %s\n\n", product.PriceLabel(l.Subtotal))
	}
	fmt.Fprintf(&b, "*Total Pesanan: %s*\n\n", product.PriceLabel(total))
	b.WriteString("Mohon konfirmasi pesanan saya. Terima kasih!")
	return b.String()
}

// ItemPayload is one line of an OrderSubmitted event.
type ItemPayload struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
	Price     int    `json:"price"`
}

// SubmittedPayload is the body of an OrderSubmitted event.
type SubmittedPayload struct {
	Reference    string        `json:"reference"`
	CustomerName string        `json:"customer_name"`
	Items        []ItemPayload `json:"items"`
	Total        int           `json:"total"`
}

func (o Order) Payload() SubmittedPayload {
	items := make([]ItemPayload, 0, len(o.Lines))
	for _, l := range o.Lines {
		items = append(items, ItemPayload{ProductID: l.Product.ID, Qty: l.Quantity, Price: l.UnitPrice})
	}
	return SubmittedPayload{
		Reference:    o.Reference,
		CustomerName: o.Customer.Name,
		Items:        items,
		Total:        o.Total,
	}
}
