package category

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/categories", h.getCategories)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/admin/categories", h.addCategory)
	app.Delete("/api/v1/admin/categories/:name", h.deleteCategory)
}

func (h *Handler) getCategories(c *fiber.Ctx) error {
	ctx := c.UserContext()
	return c.JSON(fiber.Map{
		"categories": h.service.List(ctx),
		"selectable": h.service.Selectable(ctx),
	})
}

type addRequest struct {
	Name string `json:"name"`
}

func (h *Handler) addCategory(c *fiber.Ctx) error {
	payload := new(addRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	categories, err := h.service.Add(c.UserContext(), payload.Name)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"categories": categories})
}

func (h *Handler) deleteCategory(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	moved, err := h.service.Delete(c.UserContext(), name)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": name, "reassigned": moved})
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrEmptyName):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, ErrExists), errors.Is(err, ErrReserved):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
