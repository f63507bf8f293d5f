package share

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/kriuke-snack/internal/product"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products/:id/share", h.getSheet)
	app.Get("/api/v1/products/:id/buy-now", h.getBuyNow)
	app.Get("/api/v1/products/:id/enquiry", h.getEnquiry)
	app.Get("/api/v1/products/:id/ecommerce", h.getEcommerce)
}

func (h *Handler) getSheet(c *fiber.Ctx) error {
	sheet, err := h.service.Sheet(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(sheet)
}

func (h *Handler) getBuyNow(c *fiber.Ctx) error {
	link, err := h.service.BuyNow(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"url": link})
}

func (h *Handler) getEnquiry(c *fiber.Ctx) error {
	link, err := h.service.Enquiry(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"url": link})
}

func (h *Handler) getEcommerce(c *fiber.Ctx) error {
	links, err := h.service.Ecommerce(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"links": links})
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, product.ErrNotFound), errors.Is(err, ErrNoEcommerceLinks):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
