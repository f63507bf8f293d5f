package cart

import "github.com/wichananm65/kriuke-snack/internal/product"

// Item is one cart entry. There is at most one Item per product id and its
// quantity is always at least 1.
type Item struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// Add increments the quantity of id, appending a new entry with quantity 1
// when the product is not in the cart yet.
func Add(items []Item, id string) []Item {
	out := make([]Item, 0, len(items)+1)
	found := false
	for _, it := range items {
		if it.ID == id {
			it.Quantity++
			found = true
		}
		out = append(out, it)
	}
	if !found {
		out = append(out, Item{ID: id, Quantity: 1})
	}
	return out
}

// ChangeQuantity adds delta to the quantity of id. An entry that drops to
// zero or below is removed. Unknown ids leave the cart unchanged.
func ChangeQuantity(items []Item, id string, delta int) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.ID == id {
			it.Quantity += delta
			if it.Quantity <= 0 {
				continue
			}
		}
		out = append(out, it)
	}
	return out
}

func Remove(items []Item, id string) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

func Contains(items []Item, id string) bool {
	for _, it := range items {
		if it.ID == id {
			return true
		}
	}
	return false
}

// Line is a cart entry joined with its product.
type Line struct {
	Product   product.Product `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitPrice int             `json:"unitPrice"`
	Subtotal  int             `json:"subtotal"`
}

// Lines joins items with products. Entries whose product no longer exists
// are skipped.
func Lines(items []Item, products []product.Product) []Line {
	out := make([]Line, 0, len(items))
	for _, it := range items {
		p, ok := product.Find(products, it.ID)
		if !ok {
			continue
		}
		unit := p.EffectivePrice()
		out = append(out, Line{Product: p, Quantity: it.Quantity, UnitPrice: unit, Subtotal: unit * it.Quantity})
	}
	return out
}

// Total sums effective price times quantity over the existing products.
func Total(items []Item, products []product.Product) int {
	total := 0
	for _, l := range Lines(items, products) {
		total += l.Subtotal
	}
	return total
}

// Count is the number of units in the cart, used for the header badge.
func Count(items []Item) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}
