package livelink

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/live-links", h.getLinks)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Put("/api/v1/admin/live-links", h.updateLinks)
}

func (h *Handler) getLinks(c *fiber.Ctx) error {
	return c.JSON(h.service.Get(c.UserContext()))
}

func (h *Handler) updateLinks(c *fiber.Ctx) error {
	payload := new(Links)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	links, err := h.service.Update(c.UserContext(), *payload)
	if err != nil {
		if errors.Is(err, ErrIncomplete) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"message": MsgUpdated, "links": links})
}
