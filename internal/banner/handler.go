package banner

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/promos", h.getPromos)
	app.Post("/api/v1/promos/next", h.next)
	app.Post("/api/v1/promos/prev", h.prev)
	app.Post("/api/v1/promos/:index", h.show)
}

func (h *Handler) getPromos(c *fiber.Ctx) error {
	return c.JSON(h.service.Current())
}

func (h *Handler) show(c *fiber.Ctx) error {
	i, err := strconv.Atoi(c.Params("index"))
	if err != nil || i < 0 || i >= len(h.service.promos) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid promo index"})
	}
	return c.JSON(h.service.Show(i))
}

func (h *Handler) next(c *fiber.Ctx) error {
	return c.JSON(h.service.Next())
}

func (h *Handler) prev(c *fiber.Ctx) error {
	return c.JSON(h.service.Prev())
}
