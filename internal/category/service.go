package category

import (
	"context"
	"fmt"
	"sync"

	"github.com/wichananm65/kriuke-snack/internal/notice"
	"github.com/wichananm65/kriuke-snack/internal/product"
)

// Service provides business logic for categories.
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

func (s *Service) List(ctx context.Context) []string {
	return s.repo.Get(ctx)
}

func (s *Service) Selectable(ctx context.Context) []string {
	return Selectable(s.repo.Get(ctx))
}

func (s *Service) Add(ctx context.Context, name string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := Add(s.repo.Get(ctx), name)
	if err != nil {
		return next, err
	}
	if err := s.repo.Set(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

// Delete removes name and moves its products to the fallback category.
func (s *Service) Delete(ctx context.Context, name string) (int, error) {
	if name == product.FallbackCategory {
		return 0, ErrReserved
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	categories := s.repo.Get(ctx)
	if !Contains(categories, name) {
		return 0, ErrNotFound
	}
	products, moved := Reassign(s.products.Get(ctx), name)
	if moved > 0 {
		if err := s.products.Set(ctx, products); err != nil {
			return 0, err
		}
	}
	if err := s.repo.Set(ctx, Remove(categories, name)); err != nil {
		return 0, err
	}
	s.notifier.Show(fmt.Sprintf(`Kategori "%s" dihapus.`, name))
	return moved, nil
}
