package recommended

import "github.com/gofiber/fiber/v2"

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products/recommended", h.getBestSellers)
}

// getBestSellers serves ?limit=&offset=, clamped by Window.Clamp.
func (h *Handler) getBestSellers(c *fiber.Ctx) error {
	var w Window
	if err := c.QueryParser(&w); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "limit and offset must be numbers"})
	}
	return c.JSON(h.service.List(c.UserContext(), w))
}
