package favorite

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/kriuke-snack/internal/product"
)

// Handler delegates favorite operations to the favorite service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/favorites", h.getFavorites)
	app.Post("/api/v1/favorites/:id/toggle", h.toggleFavorite)
}

func (h *Handler) getFavorites(c *fiber.Ctx) error {
	ctx := c.UserContext()
	return c.JSON(fiber.Map{
		"ids":      h.service.IDs(ctx),
		"products": product.NewViews(h.service.List(ctx)),
	})
}

func (h *Handler) toggleFavorite(c *fiber.Ctx) error {
	added, err := h.service.Toggle(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	msg := MsgRemoved
	if added {
		msg = MsgAdded
	}
	return c.JSON(fiber.Map{"liked": added, "message": msg})
}
