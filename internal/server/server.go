// Package server exposes the storefront over HTTP.
package server

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	"go.uber.org/zap"

	"github.com/wichananm65/kriuke-snack/internal/admin"
	"github.com/wichananm65/kriuke-snack/internal/banner"
	"github.com/wichananm65/kriuke-snack/internal/cart"
	"github.com/wichananm65/kriuke-snack/internal/category"
	"github.com/wichananm65/kriuke-snack/internal/favorite"
	"github.com/wichananm65/kriuke-snack/internal/livelink"
	"github.com/wichananm65/kriuke-snack/internal/navigation"
	"github.com/wichananm65/kriuke-snack/internal/order"
	"github.com/wichananm65/kriuke-snack/internal/product"
	"github.com/wichananm65/kriuke-snack/internal/recommended"
	"github.com/wichananm65/kriuke-snack/internal/share"
	"github.com/wichananm65/kriuke-snack/internal/storefront"
	"github.com/wichananm65/kriuke-snack/internal/user"
)

// New builds the fiber app. Public routes are registered first; everything
// after the JWT middleware needs a valid token and an open admin session.
func New(sf *storefront.App) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               sf.Config.Kafka.Producer,
		DisableStartupMessage: true,
	})
	setupCORS(app)
	app.Use(requestLogger(sf.Log.Named("http")))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	userHandler := user.NewHandler(sf.Users, sf.Config.JWT.Secret, sf.Config.JWT.TTL)
	categoryHandler := category.NewHandler(sf.Categories)
	liveLinkHandler := livelink.NewHandler(sf.LiveLinks)
	navHandler := navigation.NewHandler(sf.Router, sf.Toast)

	userHandler.RegisterPublicRoutes(app)
	banner.NewHandler(sf.Promos).RegisterPublicRoutes(app)
	categoryHandler.RegisterPublicRoutes(app)
	liveLinkHandler.RegisterPublicRoutes(app)
	cart.NewHandler(sf.Cart).RegisterPublicRoutes(app)
	favorite.NewHandler(sf.Favorites).RegisterPublicRoutes(app)
	order.NewHandler(sf.Orders).RegisterPublicRoutes(app)
	navHandler.RegisterPublicRoutes(app)
	share.NewHandler(sf.Share).RegisterPublicRoutes(app)
	recommended.NewHandler(sf.BestSellers).RegisterPublicRoutes(app)
	// product routes last so :id does not shadow the more specific paths
	product.NewHandler(sf.Products).RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(sf.Config.JWT.Secret),
	}))
	app.Use(user.RequireSession(sf.Users))

	userHandler.RegisterProtectedRoutes(app)
	categoryHandler.RegisterProtectedRoutes(app)
	liveLinkHandler.RegisterProtectedRoutes(app)
	navHandler.RegisterProtectedRoutes(app)
	admin.NewHandler(sf.Admin).RegisterProtectedRoutes(app)

	return app
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLogger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info("request",
			zap.String("method", c.Method()),
			zap.String("url", c.OriginalURL()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
			zap.Error(err),
		)
		return err
	}
}

// Serve listens on addr until ctx is done or the listener fails, then shuts
// the app down within ShutdownTimeout.
func Serve(ctx context.Context, app *fiber.App, addr string, log *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", addr))
		errCh <- app.Listen(addr)
	}()

	var err error
	select {
	case err = <-errCh:
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if serr := app.ShutdownWithContext(shutdownCtx); serr != nil && err == nil {
		err = serr
	}
	return err
}

const ShutdownTimeout = 10 * time.Second
