package product

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("Produk tidak ditemukan.")

// View is a product with its derived display values.
type View struct {
	Product
	EffectivePrice  int            `json:"effectivePrice"`
	PriceLabel      string         `json:"priceLabel"`
	OriginalLabel   string         `json:"originalLabel"`
	HasDiscount     bool           `json:"hasDiscount"`
	DiscountPercent int            `json:"discountPercent"`
	AverageRating   float64        `json:"averageRating"`
	ReviewCount     int            `json:"reviewCount"`
	Platforms       []PlatformLink `json:"platforms,omitempty"`
}

func NewView(p Product) View {
	return View{
		Product:         p,
		EffectivePrice:  p.EffectivePrice(),
		PriceLabel:      PriceLabel(p.EffectivePrice()),
		OriginalLabel:   PriceLabel(p.OriginalPrice),
		HasDiscount:     p.HasDiscount(),
		DiscountPercent: p.DiscountPercent(),
		AverageRating:   p.AverageRating(),
		ReviewCount:     len(p.Reviews),
		Platforms:       p.EcommerceLinks.Links(),
	}
}

func NewViews(products []Product) []View {
	out := make([]View, 0, len(products))
	for _, p := range products {
		out = append(out, NewView(p))
	}
	return out
}

// ServiceInterface is what other packages need from the catalog.
type ServiceInterface interface {
	List(ctx context.Context, f Filter) Result
	Get(ctx context.Context, id string) (Product, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) All(ctx context.Context) []Product {
	return s.repo.Get(ctx)
}

func (s *Service) List(ctx context.Context, f Filter) Result {
	return Apply(s.repo.Get(ctx), f)
}

func (s *Service) Get(ctx context.Context, id string) (Product, error) {
	p, ok := Find(s.repo.Get(ctx), id)
	if !ok {
		return Product{}, ErrNotFound
	}
	return p, nil
}

func (s *Service) Detail(ctx context.Context, id string) (View, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return View{}, err
	}
	return NewView(p), nil
}
