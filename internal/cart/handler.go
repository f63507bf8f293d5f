package cart

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/kriuke-snack/internal/product"
)

// Handler delegates cart operations to the cart service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/cart", h.getCart)
	app.Post("/api/v1/cart", h.addToCart)
	app.Patch("/api/v1/cart/:id", h.changeQuantity)
	app.Delete("/api/v1/cart/:id", h.removeFromCart)
}

type addRequest struct {
	ProductID string `json:"productId"`
}

type quantityRequest struct {
	Delta int `json:"delta"`
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	return c.JSON(h.service.Get(c.UserContext()))
}

func (h *Handler) addToCart(c *fiber.Ctx) error {
	payload := new(addRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "productId is required"})
	}

	summary, err := h.service.Add(c.UserContext(), payload.ProductID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": MsgAdded, "cart": summary})
}

func (h *Handler) changeQuantity(c *fiber.Ctx) error {
	payload := new(quantityRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Delta == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "delta must not be zero"})
	}

	summary, err := h.service.ChangeQuantity(c.UserContext(), c.Params("id"), payload.Delta)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}

func (h *Handler) removeFromCart(c *fiber.Ctx) error {
	summary, err := h.service.Remove(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, product.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
