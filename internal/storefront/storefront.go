// Package storefront wires every service of the shop around one store.
package storefront

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/wichananm65/kriuke-snack/internal/admin"
	"github.com/wichananm65/kriuke-snack/internal/banner"
	"github.com/wichananm65/kriuke-snack/internal/cart"
	"github.com/wichananm65/kriuke-snack/internal/category"
	"github.com/wichananm65/kriuke-snack/internal/config"
	"github.com/wichananm65/kriuke-snack/internal/events"
	"github.com/wichananm65/kriuke-snack/internal/favorite"
	"github.com/wichananm65/kriuke-snack/internal/livelink"
	"github.com/wichananm65/kriuke-snack/internal/navigation"
	"github.com/wichananm65/kriuke-snack/internal/notice"
	"github.com/wichananm65/kriuke-snack/internal/order"
	"github.com/wichananm65/kriuke-snack/internal/product"
	"github.com/wichananm65/kriuke-snack/internal/recommended"
	"github.com/wichananm65/kriuke-snack/internal/share"
	"github.com/wichananm65/kriuke-snack/internal/store"
	"github.com/wichananm65/kriuke-snack/internal/user"
)

// Options overrides collaborators that touch the host.
type Options struct {
	Clock     notice.Clock
	Clipboard share.Clipboard
	Publisher events.Publisher
}

// App is a fully wired storefront.
type App struct {
	Config config.Config
	Log    *zap.Logger
	Store  *store.Store

	Toast  *notice.Toast
	Router *navigation.Router

	Products    *product.Service
	BestSellers *recommended.Service
	Cart        *cart.Service
	Favorites   *favorite.Service
	Categories  *category.Service
	LiveLinks   *livelink.Service
	Promos      *banner.Service
	Share       *share.Service
	Users       *user.Service
	Admin       *admin.Service
	Orders      *order.Service

	producer  *events.Producer
	startOnce sync.Once
	started   bool
}

// Open connects the configured store backend and wires the app on it.
func Open(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	kv, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Store.Driver, err)
	}
	app, err := New(kv, cfg, log, Options{})
	if err != nil {
		kv.Close()
		return nil, err
	}
	return app, nil
}

// New wires the app on kv.
func New(kv store.KV, cfg config.Config, log *zap.Logger, opts Options) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	st := store.New(kv, log.Named("store"))

	toast := notice.NewToast(opts.Clock, notice.ToastDuration)
	notifier := &loggingNotifier{next: toast, log: log.Named("notice")}

	productRepo := product.NewRepository(st)
	cartRepo := cart.NewRepository(st)
	likedRepo := favorite.NewRepository(st)
	sessionRepo := user.NewSessionRepository(st)

	router := navigation.NewRouter(sessionRepo)

	password := cfg.Admin.PasswordHash
	if password == "" {
		password = config.DefaultAdminPassword
	}
	auth, err := user.NewStaticAuthenticator(cfg.Admin.Username, password)
	if err != nil {
		return nil, fmt.Errorf("admin credentials: %w", err)
	}

	publisher := opts.Publisher
	var producer *events.Producer
	if publisher == nil {
		if len(cfg.Kafka.Brokers) > 0 {
			producer = events.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic, 256, log.Named("kafka"))
			publisher = producer
		} else {
			publisher = events.Nop
		}
	}

	promos := banner.Seed()
	products := product.NewService(productRepo)
	categories := category.NewService(st, category.NewRepository(st), productRepo, notifier)

	app := &App{
		Config:      cfg,
		Log:         log,
		Store:       st,
		Toast:       toast,
		Router:      router,
		Products:    products,
		BestSellers: recommended.NewService(products),
		Cart:        cart.NewService(st, cartRepo, productRepo, notifier),
		Favorites:   favorite.NewService(st, likedRepo, productRepo, notifier),
		Categories:  categories,
		LiveLinks:   livelink.NewService(livelink.NewRepository(st), notifier),
		Promos:      banner.NewService(promos, notice.NewCarousel(opts.Clock, notice.CarouselInterval, len(promos))),
		Share:       share.NewService(products, cfg.Shop.BaseURL, cfg.Shop.WhatsApp, opts.Clipboard, notifier),
		Users:       user.NewService(auth, sessionRepo, router),
		Admin: admin.NewService(admin.Deps{
			Lock:       st,
			Products:   productRepo,
			Cart:       cartRepo,
			Liked:      likedRepo,
			Categories: categories,
			Router:     router,
			Notifier:   notifier,
			Snapshot:   st,
		}),
		Orders: order.NewService(order.Deps{
			Lock:      st,
			Cart:      cartRepo,
			Products:  productRepo,
			Navigator: router,
			Notifier:  notifier,
			Publisher: publisher,
			Number:    cfg.Shop.WhatsApp,
			Producer:  cfg.Kafka.Producer,
			Log:       log.Named("order"),
		}),
		producer: producer,
	}
	return app, nil
}

// Start begins the promo carousel and the event producer. The producer
// flushes and stops when ctx is done or the app is closed.
func (a *App) Start(ctx context.Context) {
	a.startOnce.Do(func() {
		a.started = true
		a.Promos.Start()
		if a.producer != nil {
			a.producer.Start(ctx)
			a.Log.Info("order events enabled",
				zap.Strings("brokers", a.Config.Kafka.Brokers),
				zap.String("topic", a.Config.Kafka.Topic))
		}
	})
}

// Close stops the timers, flushes pending events and closes the store.
func (a *App) Close() error {
	a.Toast.Close()
	a.Promos.Stop()
	if a.producer != nil {
		a.producer.Close()
		if a.started {
			a.producer.WaitClosed()
		}
	}
	if err := a.Store.Close(); err != nil {
		return fmt.Errorf("close store: %w", err)
	}
	return nil
}

type loggingNotifier struct {
	next notice.Notifier
	log  *zap.Logger
}

func (n *loggingNotifier) Show(message string) {
	n.log.Debug("notice", zap.String("message", message))
	n.next.Show(message)
}
