package favorite

import (
	"context"
	"sync"

	"github.com/wichananm65/kriuke-snack/internal/notice"
	"github.com/wichananm65/kriuke-snack/internal/product"
)

// Service provides the liked-products list.
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

func (s *Service) IDs(ctx context.Context) []string {
	return s.repo.Get(ctx)
}

func (s *Service) IsLiked(ctx context.Context, id string) bool {
	return Contains(s.repo.Get(ctx), id)
}

// List returns the liked products in catalog order.
func (s *Service) List(ctx context.Context) []product.Product {
	return Products(s.repo.Get(ctx), s.products.Get(ctx))
}

// Toggle flips id in the liked set. Adding requires the product to exist;
// removing a stale id is always allowed.
func (s *Service) Toggle(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.repo.Get(ctx)
	if !Contains(ids, id) {
		if _, ok := product.Find(s.products.Get(ctx), id); !ok {
			return false, product.ErrNotFound
		}
	}
	next, added := Toggle(ids, id)
	if err := s.repo.Set(ctx, next); err != nil {
		return false, err
	}
	if added {
		s.notifier.Show(MsgAdded)
	} else {
		s.notifier.Show(MsgRemoved)
	}
	return added, nil
}
