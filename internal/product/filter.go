package product

import "strings"

// AllCategories selects every category. "Semua" and the empty string mean
// the same thing.
const AllCategories = "All"

func IsAllCategories(category string) bool {
	return category == "" || category == AllCategories || category == "Semua"
}

// Filter is the catalog browse state.
type Filter struct {
	Category string `json:"category"`
	Query    string `json:"query"`
}

// Match reports whether p passes both the category and the text filter. The
// query is a case-insensitive substring of name or subtitle.
func (f Filter) Match(p Product) bool {
	if !IsAllCategories(f.Category) && p.Category != f.Category {
		return false
	}
	if f.Query == "" {
		return true
	}
	q := strings.ToLower(f.Query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Subtitle), q)
}

// EmptyState says why a result list is empty.
type EmptyState string

const (
	NotEmpty   EmptyState = ""
	NoProducts EmptyState = "no-products"
	NoMatches  EmptyState = "no-matches"
)

type Result struct {
	Products []Product `json:"products"`
	Empty    EmptyState `json:"empty,omitempty"`
}

// Apply filters products keeping their order.
func Apply(products []Product, f Filter) Result {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	res := Result{Products: out}
	switch {
	case len(products) == 0:
		res.Empty = NoProducts
	case len(out) == 0:
		res.Empty = NoMatches
	}
	return res
}
