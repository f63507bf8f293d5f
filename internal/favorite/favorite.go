package favorite

import "github.com/wichananm65/kriuke-snack/internal/product"

const (
	MsgAdded   = "Produk ditambahkan ke favorit!"
	MsgRemoved = "Produk dihapus dari favorit."
)

// Toggle removes id from the liked set when present and adds it otherwise.
// added reports which of the two happened.
func Toggle(ids []string, id string) (out []string, added bool) {
	out = make([]string, 0, len(ids)+1)
	for _, v := range ids {
		if v == id {
			continue
		}
		out = append(out, v)
	}
	if len(out) == len(ids) {
		return append(out, id), true
	}
	return out, false
}

func Contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func Remove(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// Products returns the liked products in catalog order. Ids without a
// product are ignored.
func Products(ids []string, products []product.Product) []product.Product {
	out := make([]product.Product, 0, len(ids))
	for _, p := range products {
		if Contains(ids, p.ID) {
			out = append(out, p)
		}
	}
	return out
}
