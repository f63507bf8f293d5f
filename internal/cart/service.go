package cart

import (
	"context"
	"sync"

	"github.com/wichananm65/kriuke-snack/internal/notice"
	"github.com/wichananm65/kriuke-snack/internal/product"
)

const MsgAdded = "Produk ditambahkan ke keranjang!"

// Summary is the cart as the cart page shows it.
type Summary struct {
	Items      []Item `json:"items"`
	Lines      []Line `json:"lines"`
	Total      int    `json:"total"`
	TotalLabel string `json:"totalLabel"`
	Count      int    `json:"count"`
}

func Summarize(items []Item, products []product.Product) Summary {
	lines := Lines(items, products)
	total := 0
	for _, l := range lines {
		total += l.Subtotal
	}
	return Summary{
		Items:      items,
		Lines:      lines,
		Total:      total,
		TotalLabel: product.PriceLabel(total),
		Count:      Count(items),
	}
}

// Service orchestrates cart operations. mu serializes read-modify-write
// against the other services sharing the same store.
type Service struct {
	mu       sync.Locker
	repo     Repository
	products product.Repository
	notifier notice.Notifier
}

func NewService(mu sync.Locker, repo Repository, products product.Repository, n notice.Notifier) *Service {
	if n == nil {
		n = notice.Discard
	}
	return &Service{mu: mu, repo: repo, products: products, notifier: n}
}

func (s *Service) Get(ctx context.Context) Summary {
	return Summarize(s.repo.Get(ctx), s.products.Get(ctx))
}

// Add puts one more unit of id in the cart. Only listed products can be added.
func (s *Service) Add(ctx context.Context, id string) (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := s.products.Get(ctx)
	if _, ok := product.Find(products, id); !ok {
		return Summary{}, product.ErrNotFound
	}
	items := Add(s.repo.Get(ctx), id)
	if err := s.repo.Set(ctx, items); err != nil {
		return Summary{}, err
	}
	s.notifier.Show(MsgAdded)
	return Summarize(items, products), nil
}

func (s *Service) ChangeQuantity(ctx context.Context, id string, delta int) (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.repo.Get(ctx)
	if !Contains(current, id) {
		return Summarize(current, s.products.Get(ctx)), nil
	}
	items := ChangeQuantity(current, id, delta)
	if err := s.repo.Set(ctx, items); err != nil {
		return Summary{}, err
	}
	return Summarize(items, s.products.Get(ctx)), nil
}

func (s *Service) Remove(ctx context.Context, id string) (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.repo.Get(ctx)
	if !Contains(current, id) {
		return Summarize(current, s.products.Get(ctx)), nil
	}
	items := Remove(current, id)
	if err := s.repo.Set(ctx, items); err != nil {
		return Summary{}, err
	}
	return Summarize(items, s.products.Get(ctx)), nil
}

// Clear empties the cart after an order has been handed off.
func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Set(ctx, []Item{})
}
