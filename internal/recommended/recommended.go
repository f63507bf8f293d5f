package recommended

import (
	"sort"

	"github.com/wichananm65/kriuke-snack/internal/product"
)

const (
	DefaultLimit = 12
	MaxLimit     = 50
)

// Rank orders products by units sold, then rating, then catalog position.
func Rank(products []product.Product) []product.Product {
	out := append([]product.Product(nil), products...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Sold != out[j].Sold {
			return out[i].Sold > out[j].Sold
		}
		return out[i].Rating > out[j].Rating
	})
	return out
}

// Window selects a page of the ranking. Zero values mean the first page of
// DefaultLimit entries.
type Window struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// Clamp bounds the limit to (0, MaxLimit] and the offset to >= 0.
func (w Window) Clamp() Window {
	if w.Limit <= 0 {
		w.Limit = DefaultLimit
	}
	if w.Limit > MaxLimit {
		w.Limit = MaxLimit
	}
	if w.Offset < 0 {
		w.Offset = 0
	}
	return w
}

// Page cuts the window out of products.
func Page(products []product.Product, w Window) []product.Product {
	w = w.Clamp()
	if w.Offset >= len(products) {
		return []product.Product{}
	}
	end := w.Offset + w.Limit
	if end > len(products) {
		end = len(products)
	}
	return products[w.Offset:end]
}
