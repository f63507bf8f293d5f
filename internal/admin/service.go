package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/wichananm65/kriuke-snack/internal/cart"
	"github.com/wichananm65/kriuke-snack/internal/category"
	"github.com/wichananm65/kriuke-snack/internal/favorite"
	"github.com/wichananm65/kriuke-snack/internal/navigation"
	"github.com/wichananm65/kriuke-snack/internal/notice"
	"github.com/wichananm65/kriuke-snack/internal/product"
)

const (
	MsgUpdated = "Produk berhasil diperbarui!"
	MsgCreated = "Produk baru berhasil ditambahkan!"
	MsgDeleted = "Produk berhasil dihapus."
)

// Snapshotter dumps every persisted slice.
type Snapshotter interface {
	Snapshot(ctx context.Context) (map[string]json.RawMessage, error)
}

// Deps groups the collaborators of Service.
type Deps struct {
	Lock       sync.Locker
	Products   product.Repository
	Cart       cart.Repository
	Liked      favorite.Repository
	Categories *category.Service
	Router     *navigation.Router
	Notifier   notice.Notifier
	Snapshot   Snapshotter
	Now        func() time.Time
}

type Service struct {
	mu         sync.Locker
	products   product.Repository
	cart       cart.Repository
	liked      favorite.Repository
	categories *category.Service
	router     *navigation.Router
	notifier   notice.Notifier
	snapshot   Snapshotter
	now        func() time.Time

	idMu   sync.Mutex
	lastID int64
}

func NewService(d Deps) *Service {
	if d.Notifier == nil {
		d.Notifier = notice.Discard
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return &Service{
		mu:         d.Lock,
		products:   d.Products,
		cart:       d.Cart,
		liked:      d.Liked,
		categories: d.Categories,
		router:     d.Router,
		notifier:   d.Notifier,
		snapshot:   d.Snapshot,
		now:        d.Now,
	}
}

// Products is the admin listing, newest first.
func (s *Service) Products(ctx context.Context) []product.View {
	return product.NewViews(s.products.Get(ctx))
}

// Form returns the editor contents for id, or a blank form when id is empty.
func (s *Service) Form(ctx context.Context, id string) (ProductForm, error) {
	if id == "" {
		return NewForm(category.DefaultFor(s.categories.List(ctx))), nil
	}
	p, ok := product.Find(s.products.Get(ctx), id)
	if !ok {
		return ProductForm{}, product.ErrNotFound
	}
	return FormFromProduct(p), nil
}

// SaveProduct validates form and stores it. With an id the form overwrites
// every editable field of that product and keeps its reviews. Without an id
// a new product is prepended under a fresh id. Invalid forms change nothing.
func (s *Service) SaveProduct(ctx context.Context, form ProductForm, id string) (product.Product, error) {
	data, err := form.Product()
	if err != nil {
		return product.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	products := s.products.Get(ctx)
	var saved product.Product
	msg := MsgUpdated

	if id != "" {
		found := false
		next := make([]product.Product, len(products))
		for i, p := range products {
			if p.ID == id {
				data.ID = p.ID
				data.Reviews = p.Reviews
				p = data
				saved = p
				found = true
			}
			next[i] = p
		}
		if !found {
			return product.Product{}, product.ErrNotFound
		}
		products = next
	} else {
		data.ID = s.newID(products)
		saved = data
		products = append([]product.Product{data}, products...)
		msg = MsgCreated
	}

	if err := s.products.Set(ctx, products); err != nil {
		return product.Product{}, err
	}
	s.notifier.Show(msg)
	if s.router != nil {
		s.router.BackToDashboard()
	}
	return saved, nil
}

// newID returns "p" followed by the current unix millis, bumped past the last
// issued id and any id already taken.
func (s *Service) newID(products []product.Product) string {
	s.idMu.Lock()
	defer s.idMu.Unlock()

	n := s.now().UnixMilli()
	if n <= s.lastID {
		n = s.lastID + 1
	}
	for {
		id := fmt.Sprintf("p%d", n)
		if _, taken := product.Find(products, id); !taken {
			s.lastID = n
			return id
		}
		n++
	}
}

// DeleteProduct removes id and every cart line and like that points at it.
// References go first so a failed write never leaves one dangling.
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := s.products.Get(ctx)
	if _, ok := product.Find(products, id); !ok {
		return product.ErrNotFound
	}

	if err := s.cart.Set(ctx, cart.Remove(s.cart.Get(ctx), id)); err != nil {
		return err
	}
	if err := s.liked.Set(ctx, favorite.Remove(s.liked.Get(ctx), id)); err != nil {
		return err
	}

	kept := make([]product.Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if err := s.products.Set(ctx, kept); err != nil {
		return err
	}
	s.notifier.Show(MsgDeleted)
	return nil
}

// Confirm carries out the action behind an open confirmation dialog and
// closes it.
func (s *Service) Confirm(ctx context.Context, m navigation.Modal) error {
	var err error
	switch m := m.(type) {
	case navigation.ConfirmDeleteProduct:
		err = s.DeleteProduct(ctx, m.ProductID)
	case navigation.ConfirmDeleteCategory:
		_, err = s.categories.Delete(ctx, m.Name)
	case navigation.NoModal, nil:
	default:
		err = fmt.Errorf("unsupported modal %T", m)
	}
	if err != nil {
		return err
	}
	if s.router != nil {
		s.router.CloseModal()
	}
	return nil
}

// ConfirmOpen confirms whatever dialog the router has open.
func (s *Service) ConfirmOpen(ctx context.Context) error {
	if s.router == nil {
		return nil
	}
	return s.Confirm(ctx, s.router.Modal())
}

func (s *Service) Snapshot(ctx context.Context) (map[string]json.RawMessage, error) {
	if s.snapshot == nil {
		return map[string]json.RawMessage{}, nil
	}
	return s.snapshot.Snapshot(ctx)
}
