package category

import (
	"errors"
	"strings"

	"github.com/wichananm65/kriuke-snack/internal/product"
)

var (
	ErrEmptyName = errors.New("nama kategori wajib diisi")
	ErrExists    = errors.New("kategori sudah ada")
	ErrReserved  = errors.New("kategori Lainnya tidak dapat dihapus")
	ErrNotFound  = errors.New("kategori tidak ditemukan")
)

// Default returns the first-run category list.
func Default() []string {
	return []string{"Keripik Pisang", "Promo Spesial", "Manis", "Gurih", "Pedas"}
}

// Add appends name. Empty (after trimming) and duplicate names are rejected.
func Add(categories []string, name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return categories, ErrEmptyName
	}
	if Contains(categories, name) {
		return categories, ErrExists
	}
	out := make([]string, 0, len(categories)+1)
	out = append(out, categories...)
	return append(out, name), nil
}

func Remove(categories []string, name string) []string {
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		if c != name {
			out = append(out, c)
		}
	}
	return out
}

func Contains(categories []string, name string) bool {
	for _, c := range categories {
		if c == name {
			return true
		}
	}
	return false
}

// Selectable is the list offered on the product form: the stored categories
// plus the fallback when it is not stored.
func Selectable(categories []string) []string {
	out := append([]string(nil), categories...)
	if !Contains(out, product.FallbackCategory) {
		out = append(out, product.FallbackCategory)
	}
	return out
}

// DefaultFor is the category preselected on a new product form.
func DefaultFor(categories []string) string {
	if len(categories) > 0 {
		return categories[0]
	}
	return product.FallbackCategory
}

// Reassign moves every product of name to the fallback category and reports
// how many were moved.
func Reassign(products []product.Product, name string) ([]product.Product, int) {
	out := make([]product.Product, len(products))
	moved := 0
	for i, p := range products {
		if p.Category == name {
			p.Category = product.FallbackCategory
			moved++
		}
		out[i] = p
	}
	return out, moved
}
