package product

import (
	"math"
	"time"
)

// FallbackCategory receives the products of a deleted category. It is always
// a valid category and can never be deleted itself.
const FallbackCategory = "Lainnya"

// Review is immutable once created.
type Review struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Timestamp time.Time `json:"timestamp"`
}

// Platform names an external marketplace a product can be bought on.
type Platform string

const (
	PlatformTiktok    Platform = "tiktok"
	PlatformShopee    Platform = "shopee"
	PlatformTokopedia Platform = "tokopedia"
)

var platformLabels = map[Platform]string{
	PlatformTiktok:    "TikTok Shop",
	PlatformShopee:    "Shopee",
	PlatformTokopedia: "Tokopedia",
}

func (p Platform) Label() string { return platformLabels[p] }

type EcommerceLinks struct {
	Tiktok    string `json:"tiktok,omitempty"`
	Shopee    string `json:"shopee,omitempty"`
	Tokopedia string `json:"tokopedia,omitempty"`
}

// PlatformLink is one non-empty marketplace link.
type PlatformLink struct {
	Platform Platform `json:"platform"`
	Label    string   `json:"label"`
	URL      string   `json:"url"`
}

// Links returns the configured marketplace links in display order.
func (l *EcommerceLinks) Links() []PlatformLink {
	if l == nil {
		return nil
	}
	var out []PlatformLink
	for _, pl := range []struct {
		p   Platform
		url string
	}{{PlatformTiktok, l.Tiktok}, {PlatformShopee, l.Shopee}, {PlatformTokopedia, l.Tokopedia}} {
		if pl.url != "" {
			out = append(out, PlatformLink{Platform: pl.p, Label: pl.p.Label(), URL: pl.url})
		}
	}
	return out
}

// Product is one catalog entry. Prices are whole rupiah.
type Product struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Subtitle       string          `json:"subtitle"`
	OriginalPrice  int             `json:"originalPrice"`
	DiscountPrice  *int            `json:"discountPrice,omitempty"`
	Rating         float64         `json:"rating"`
	Sold           int             `json:"sold"`
	Category       string          `json:"category"`
	Images         []string        `json:"images"`
	Description    string          `json:"description"`
	Reviews        []Review        `json:"reviews,omitempty"`
	EcommerceLinks *EcommerceLinks `json:"ecommerceLinks,omitempty"`
}

// HasDiscount reports whether a discount price is set and actually lower
// than the original price.
func (p Product) HasDiscount() bool {
	return p.DiscountPrice != nil && *p.DiscountPrice < p.OriginalPrice
}

func (p Product) EffectivePrice() int {
	if p.HasDiscount() {
		return *p.DiscountPrice
	}
	return p.OriginalPrice
}

// DiscountPercent is the rounded percentage off the original price, 0 when
// no discount applies.
func (p Product) DiscountPercent() int {
	if !p.HasDiscount() || p.OriginalPrice <= 0 {
		return 0
	}
	off := float64(p.OriginalPrice-*p.DiscountPrice) / float64(p.OriginalPrice) * 100
	return int(math.Round(off))
}

// AverageRating is the mean review rating, 0 without reviews.
func (p Product) AverageRating() float64 {
	if len(p.Reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range p.Reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(p.Reviews))
}

func (p Product) HasEcommerceLinks() bool { return len(p.EcommerceLinks.Links()) > 0 }

// Find returns the product with id.
func Find(products []Product, id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Clone returns a deep copy so callers can mutate freely.
func (p Product) Clone() Product {
	c := p
	if p.DiscountPrice != nil {
		d := *p.DiscountPrice
		c.DiscountPrice = &d
	}
	c.Images = append([]string(nil), p.Images...)
	if p.Reviews != nil {
		c.Reviews = append([]Review(nil), p.Reviews...)
	}
	if p.EcommerceLinks != nil {
		l := *p.EcommerceLinks
		c.EcommerceLinks = &l
	}
	return c
}
