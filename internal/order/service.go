package order

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wichananm65/kriuke-snack/internal/cart"
	"github.com/wichananm65/kriuke-snack/internal/events"
	"github.com/wichananm65/kriuke-snack/internal/navigation"
	"github.com/wichananm65/kriuke-snack/internal/notice"
	"github.com/wichananm65/kriuke-snack/internal/product"
	"github.com/wichananm65/kriuke-snack/internal/whatsapp"
)

// Navigator moves the storefront to another page.
type Navigator interface {
	Navigate(ctx context.Context, to navigation.Page) navigation.Page
}

// Deps groups the collaborators of Service.
type Deps struct {
	Lock      sync.Locker
	Cart      cart.Repository
	Products  product.Repository
	Navigator Navigator
	Notifier  notice.Notifier
	Publisher events.Publisher
	Number    string
	Producer  string
	Log       *zap.Logger
}

// Service turns the cart into a WhatsApp order.
type Service struct {
	mu        sync.Locker
	cart      cart.Repository
	products  product.Repository
	nav       Navigator
	notifier  notice.Notifier
	publisher events.Publisher
	number    string
	producer  string
	log       *zap.Logger
	now       func() time.Time
}

func NewService(d Deps) *Service {
	if d.Notifier == nil {
		d.Notifier = notice.Discard
	}
	if d.Publisher == nil {
		d.Publisher = events.Nop
	}
	if d.Number == "" {
		d.Number = whatsapp.DefaultNumber
	}
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	return &Service{
		mu:        d.Lock,
		cart:      d.Cart,
		products:  d.Products,
		nav:       d.Navigator,
		notifier:  d.Notifier,
		publisher: d.Publisher,
		number:    d.Number,
		producer:  d.Producer,
		log:       d.Log,
		now:       time.Now,
	}
}

// Submit validates the customer, builds the order message and its WhatsApp
// link, then empties the cart and returns to the home page. Publishing the
// OrderSubmitted event is best effort.
func (s *Service) Submit(ctx context.Context, c Customer) (Order, error) {
	c, err := c.Normalize()
	if err != nil {
		return Order{}, err
	}

	s.mu.Lock()
	summary := cart.Summarize(s.cart.Get(ctx), s.products.Get(ctx))
	if len(summary.Lines) == 0 {
		s.mu.Unlock()
		return Order{}, ErrEmptyCart
	}
	if err := s.cart.Set(ctx, []cart.Item{}); err != nil {
		s.mu.Unlock()
		return Order{}, err
	}
	s.mu.Unlock()

	msg := Message(c, summary.Lines, summary.Total)
	o := Order{
		Reference:   uuid.NewString(),
		Customer:    c,
		Lines:       summary.Lines,
		Total:       summary.Total,
		Message:     msg,
		WhatsAppURL: whatsapp.Link(s.number, msg),
		CreatedAt:   s.now().UTC(),
	}

	s.notifier.Show(MsgSubmitted)
	if s.nav != nil {
		s.nav.Navigate(ctx, navigation.PageHome)
	}
	s.publish(ctx, o)
	return o, nil
}

func (s *Service) publish(ctx context.Context, o Order) {
	env, err := events.NewEnvelope(events.EventOrderSubmitted, s.producer, o.Reference, o.Payload())
	if err != nil {
		s.log.Warn("order event encode failed", zap.String("reference", o.Reference), zap.Error(err))
		return
	}
	if err := s.publisher.Publish(ctx, o.Reference, env); err != nil {
		s.log.Warn("order event publish failed", zap.String("reference", o.Reference), zap.Error(err))
	}
}
