package recommended

import (
	"context"

	"github.com/wichananm65/kriuke-snack/internal/product"
)

// Catalog is the part of the product service this package reads.
type Catalog interface {
	All(ctx context.Context) []product.Product
}

// Service provides the best-seller list.
type Service struct {
	catalog Catalog
}

func NewService(catalog Catalog) *Service {
	return &Service{catalog: catalog}
}

func (s *Service) List(ctx context.Context, w Window) []product.View {
	return product.NewViews(Page(Rank(s.catalog.All(ctx)), w))
}
